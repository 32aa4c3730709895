package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConstraint   = errors.New("record violates constraints")
	ErrDecode       = errors.New("stored payload is malformed")
	ErrStorageInit  = errors.New("storage initialization failed")
)
