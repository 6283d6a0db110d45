package device

import "errors"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpToken          = errors.New("expired token")
	ErrInvalidSecret     = errors.New("invalid device secret")
	ErrAlreadyRegistered = errors.New("device already registered")
	ErrUnexpected        = errors.New("unexpected error")
)
