package domain

import "errors"

// Validation.
var ErrValidation = errors.New("validation failed")

// Authentication. ErrInvalidCredentials, ErrInvalidToken and ErrInactiveUser
// all satisfy errors.Is(err, ErrUnauthenticated).
var (
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInvalidCredentials = authError("incorrect email or password")
	ErrInvalidToken       = authError("invalid token")
	ErrInactiveUser       = authError("inactive user")
)

// Not found. Ownership mismatches are reported with the same errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrUserNotFound     = notFound("user not found")
	ErrOrderNotFound    = notFound("order not found")
	ErrDocumentNotFound = notFound("document not found")
	ErrMessageNotFound  = notFound("message not found")
)

// Conflict.
var (
	ErrConflict   = errors.New("conflict")
	ErrUserExists = conflict("email already registered")
)

// ErrRateLimited is returned when a public form is submitted too often.
var ErrRateLimited = errors.New("too many requests")

type kindError struct {
	msg  string
	kind error
}

func (e kindError) Error() string { return e.msg }

func (e kindError) Is(target error) bool { return target == e.kind }

func authError(msg string) error { return kindError{msg: msg, kind: ErrUnauthenticated} }

func notFound(msg string) error { return kindError{msg: msg, kind: ErrNotFound} }

func conflict(msg string) error { return kindError{msg: msg, kind: ErrConflict} }
