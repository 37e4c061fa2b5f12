package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"user-service/internal/application/ports"
	"user-service/internal/application/usecase"
	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
)

var ErrInvalidBirthDate = errors.New("invalid birth_date format, want YYYY-MM-DD")

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID,
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		BirthDate: uDomain.BirthDate.Format(time.DateOnly),
		Role:      uDomain.Role.Code(),
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToPagedResponse(p page.Paged[*user.User]) PagedResponse {
	mapped := page.Map(p, func(u *user.User) User { return ToResponseUser(*u) })

	return PagedResponse{
		Items:      mapped.Items,
		Page:       mapped.Page,
		PageSize:   mapped.PageSize,
		TotalItems: mapped.TotalItems,
		TotalPages: mapped.TotalPages,
	}
}

// ToCreateCommand expects a request already normalized by the validator.
func ToCreateCommand(req CreateUserRequest, createdBy uuid.UUID, h ports.PasswordHasher) (usecase.CreateUserCommand, error) {
	d, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return usecase.CreateUserCommand{}, ErrInvalidBirthDate
	}
	hash, err := h.Hash(req.Password)
	if err != nil {
		return usecase.CreateUserCommand{}, fmt.Errorf("hash password: %w", err)
	}

	var role int
	if req.Role != nil {
		role = *req.Role
	}

	return usecase.CreateUserCommand{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		BirthDate: d,
		Phone:     req.Phone,
		RoleCode:  role,
		CreatedBy: createdBy,
	}, nil
}

// ToUpdateCommand leaves Password empty: UpdateUser only applies the name, so the
// validated password is never hashed or carried further.
func ToUpdateCommand(id uuid.UUID, req UpdateUserRequest, updatedBy uuid.UUID) (usecase.UpdateUserCommand, error) {
	d, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return usecase.UpdateUserCommand{}, ErrInvalidBirthDate
	}

	return usecase.UpdateUserCommand{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: d,
		Phone:     req.Phone,
		UpdatedBy: updatedBy,
	}, nil
}
