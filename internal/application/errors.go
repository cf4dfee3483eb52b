package application

import "errors"

var (
	ErrForbidden     = errors.New("forbidden")
	ErrEmailRequired = errors.New("email is required")
)
