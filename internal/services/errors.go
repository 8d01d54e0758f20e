package services

import "errors"

var (
	// ErrNotFound covers an empty question bank, a missing result and a
	// result owned by another user. The latter two are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRegNumberTaken     = errors.New("registration number already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDeadlineExceeded   = errors.New("time limit exceeded")
)
