package main

import "errors"

var (
	// ErrInvalidKey indicates a key that isn't an integer.
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnknownOp indicates a script step naming no known operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrMissingKey indicates an operation that needs a key was given none.
	ErrMissingKey = errors.New("operation needs a key")
)
