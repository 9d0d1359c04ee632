package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("access forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by the key-value store for absent keys.
	ErrNotFound = errors.New("not found")

	// ErrCorruptState is returned when a persisted value cannot be
	// deserialized, instead of crashing on malformed stored data.
	ErrCorruptState = errors.New("corrupt persisted state")
)
