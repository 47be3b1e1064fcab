package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnavailable  = errors.New("dependency unavailable")
)
