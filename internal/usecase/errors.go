package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("snapshot unavailable")
	ErrInternal     = errors.New("internal error")
)
