package domain

import "errors"

var (
	// ErrNotFound indicates the requested registration does not exist.
	ErrNotFound = errors.New("registration not found")
	// ErrAlreadyCancelled indicates the registration was cancelled before.
	ErrAlreadyCancelled = errors.New("registration already cancelled")
)
