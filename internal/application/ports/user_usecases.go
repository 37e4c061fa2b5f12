package ports

import (
	"context"

	"user-service/internal/application/usecase"
	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
)

type (
	CreateUser interface {
		Execute(ctx context.Context, cmd usecase.CreateUserCommand) (*user.User, error)
	}
	UpdateUser interface {
		Execute(ctx context.Context, cmd usecase.UpdateUserCommand) (*user.User, error)
	}
	DeleteUser interface {
		Execute(ctx context.Context, cmd usecase.DeleteUserCommand) error
	}
	GetUserByID interface {
		Execute(ctx context.Context, q usecase.GetUserByIDQuery) (*user.User, error)
	}
	GetAllUsers interface {
		Execute(ctx context.Context, q usecase.GetAllUsersQuery) (page.Paged[*user.User], error)
	}
)

var (
	_ CreateUser  = (*usecase.CreateUser)(nil)
	_ UpdateUser  = (*usecase.UpdateUser)(nil)
	_ DeleteUser  = (*usecase.DeleteUser)(nil)
	_ GetUserByID = (*usecase.GetUserByID)(nil)
	_ GetAllUsers = (*usecase.GetAllUsers)(nil)
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}
