package entity

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrAlreadyPaid          = errors.New("already paid")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDepositLimitExceeded = errors.New("deposit limit exceeded")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("forbidden")
)
