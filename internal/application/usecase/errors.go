package usecase

import (
	"errors"
	"fmt"
)

const (
	OpCreateUser  = "CREATE_USER"
	OpUpdateUser  = "UPDATE_USER"
	OpDeleteUser  = "DELETE_USER"
	OpGetUserByID = "GET_USER_BY_ID"
	OpGetAllUsers = "GET_ALL_USERS"
)

var ErrInvalidPage = errors.New("invalid page request")

// Failure is a storage failure surfaced by a use-case. Op is stable and safe to match on.
type Failure struct {
	Op      string
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("[%s] %s", f.Op, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", f.Op, f.Message, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }
