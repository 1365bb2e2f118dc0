package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{ErrInvalidCredentials, ErrUnauthenticated},
		{ErrInvalidToken, ErrUnauthenticated},
		{ErrInactiveUser, ErrUnauthenticated},
		{ErrOrderNotFound, ErrNotFound},
		{ErrDocumentNotFound, ErrNotFound},
		{ErrMessageNotFound, ErrNotFound},
		{ErrUserNotFound, ErrNotFound},
		{ErrUserExists, ErrConflict},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("op: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Errorf("%v: expected kind %v", tc.err, tc.kind)
		}
		if !errors.Is(wrapped, tc.err) {
			t.Errorf("%v: expected to match itself through wrapping", tc.err)
		}
	}

	if errors.Is(ErrInvalidToken, ErrInvalidCredentials) {
		t.Fatalf("distinct auth errors must not match each other")
	}
	if errors.Is(ErrOrderNotFound, ErrUnauthenticated) {
		t.Fatalf("not-found must not match authentication kind")
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, st := range OrderStatuses {
		got, err := ParseOrderStatus(string(st))
		if err != nil || got != st {
			t.Fatalf("ParseOrderStatus(%q) = %q, %v", st, got, err)
		}
	}
	if _, err := ParseOrderStatus("lost"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestParseDocumentType(t *testing.T) {
	if got, err := ParseDocumentType("packing_list"); err != nil || got != DocumentPackingList {
		t.Fatalf("unexpected: %q %v", got, err)
	}
	if _, err := ParseDocumentType("photo"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestOrderNumber(t *testing.T) {
	if got := OrderNumber("0123456789abcdef", 1); got != "ORD-01234567-0001" {
		t.Fatalf("unexpected order number %q", got)
	}
	if got := OrderNumber("abc", 12345); got != "ORD-abc-12345" {
		t.Fatalf("unexpected order number %q", got)
	}
}

func TestUpdateIsEmpty(t *testing.T) {
	if !(UserUpdate{}).IsEmpty() || !(OrderUpdate{}).IsEmpty() {
		t.Fatalf("zero updates must be empty")
	}
	name := "x"
	if (UserUpdate{Name: &name}).IsEmpty() {
		t.Fatalf("update with name must not be empty")
	}
	st := OrderShipped
	if (OrderUpdate{Status: &st}).IsEmpty() {
		t.Fatalf("update with status must not be empty")
	}
}
