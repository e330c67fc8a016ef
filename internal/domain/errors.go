package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request is structurally invalid
	// (e.g. submitting a nil order draft).
	ErrInvalidInput = errors.New("invalid input")
)
