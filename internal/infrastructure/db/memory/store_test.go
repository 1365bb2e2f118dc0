package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/expotrade/client-portal/internal/core/domain"
)

func TestUsers_CreateDuplicateEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := s.Users().Create(ctx, &domain.User{ID: "u2", Email: "a@b.c"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := s.Users().FindByID(ctx, "u2"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second user must not be stored, got %v", err)
	}
}

func TestUsers_ConcurrentRegistrationSingleWinner(t *testing.T) {
	s := NewStore()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Users().Create(context.Background(), &domain.User{ID: fmt.Sprintf("u%d", i), Email: "race@b.c"})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if wins != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", wins)
	}
}

func TestUsers_ReturnedValuesAreCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@b.c", Name: "A"})

	u, _ := s.Users().FindByID(ctx, "u1")
	u.Name = "mutated"

	again, _ := s.Users().FindByID(ctx, "u1")
	if again.Name != "A" {
		t.Fatalf("store shares memory with callers")
	}
}

func TestOrders_OwnerScoping(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	_ = s.Orders().Create(ctx, &domain.Order{ID: "o1", UserID: "alice", CreatedAt: now, Status: domain.OrderPending})

	if _, err := s.Orders().FindOwned(ctx, "bob", "o1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	st := domain.OrderShipped
	if _, err := s.Orders().UpdateOwned(ctx, "bob", "o1", domain.OrderUpdate{Status: &st}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	o, _ := s.Orders().FindOwned(ctx, "alice", "o1")
	if o.Status != domain.OrderPending {
		t.Fatalf("foreign update leaked: %s", o.Status)
	}
	if n, _ := s.Orders().CountOwned(ctx, "bob"); n != 0 {
		t.Fatalf("bob should own nothing, counted %d", n)
	}
}

func TestOrders_ListTieBreakByInsertion(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	same := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		_ = s.Orders().Create(ctx, &domain.Order{ID: fmt.Sprintf("o%d", i), UserID: "alice", CreatedAt: same})
	}

	list, _ := s.Orders().ListOwned(ctx, "alice", 2)
	if len(list) != 2 || list[0].ID != "o3" || list[1].ID != "o2" {
		t.Fatalf("unexpected order: %v, %v", list[0].ID, list[1].ID)
	}
}

func TestOrders_CountByStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for i, st := range []domain.OrderStatus{domain.OrderPending, domain.OrderProcessing, domain.OrderDelivered, domain.OrderCancelled} {
		_ = s.Orders().Create(ctx, &domain.Order{ID: fmt.Sprintf("o%d", i), UserID: "alice", Status: st})
	}

	active, _ := s.Orders().CountOwned(ctx, "alice", domain.ActiveOrderStatuses...)
	delivered, _ := s.Orders().CountOwned(ctx, "alice", domain.OrderDelivered)
	total, _ := s.Orders().CountOwned(ctx, "alice")
	if active != 2 || delivered != 1 || total != 4 {
		t.Fatalf("active=%d delivered=%d total=%d", active, delivered, total)
	}
}

func TestMessages_MarkRead(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Messages().Create(ctx, &domain.Message{ID: "m1", UserID: "alice"})

	if err := s.Messages().MarkRead(ctx, "bob", "m1"); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
	if err := s.Messages().MarkRead(ctx, "alice", "m1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := s.Messages().MarkRead(ctx, "alice", "m1"); err != nil {
		t.Fatalf("mark read is idempotent: %v", err)
	}
	if n, _ := s.Messages().CountUnread(ctx, "alice"); n != 0 {
		t.Fatalf("expected 0 unread, got %d", n)
	}
}

func TestSetActive(t *testing.T) {
	s := NewStore()
	_ = s.Users().Create(context.Background(), &domain.User{ID: "u1", Email: "a@b.c", IsActive: true})

	if err := s.SetActive("u1", false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	u, _ := s.Users().FindByEmail(context.Background(), "a@b.c")
	if u.IsActive {
		t.Fatalf("expected inactive")
	}
	if err := s.SetActive("nope", true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
