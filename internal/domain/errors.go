package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrIntegrity    = errors.New("integrity constraint violated")
	ErrInvalidInput = errors.New("invalid input")
)
