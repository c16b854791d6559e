package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration: %w", ErrInvalidArgument)
	ErrInsufficientFunds    = errors.New("insufficient funds")
)
