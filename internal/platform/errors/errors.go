package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoDecoder    = errors.New("no decoder plugin available")
)
