package errors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidIndex  = errors.New("invalid index")
	ErrInvalidConfig = errors.New("invalid configuration")
)
