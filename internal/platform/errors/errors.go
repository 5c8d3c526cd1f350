package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotInteger   = errors.New("not a whole number")
	ErrNotPositive  = errors.New("not greater than zero")
	ErrInputClosed  = errors.New("input closed")
)
