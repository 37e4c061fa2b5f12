package user

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRole = errors.New("unknown role")
	ErrNotFound    = errors.New("user not found")

	// ErrDataAccess marks errors raised by the storage layer itself
	// (rejected statements, constraint violations, unreadable rows).
	ErrDataAccess = errors.New("data access failure")

	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrDataAccess)
)
