package user

import (
	"fmt"

	domain "user-service/internal/domain/user"
)

func fromDBModel(model *User) (*domain.User, error) {
	role, err := domain.RoleFromCode(int(model.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: user %s: %w", domain.ErrDataAccess, model.ID, err)
	}

	var u = &domain.User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Password:  model.Password,
		BirthDate: model.BirthDate,
		Phone:     model.Phone,
		Role:      role,

		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
		UpdatedBy: model.UpdatedBy,
		UpdatedAt: model.UpdatedAt,

		Deleted: model.Deleted,
	}

	return u, nil
}

func fromDBModels(models Users) (domain.Users, error) {
	us := make(domain.Users, len(models))
	for idx, m := range models {
		u, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		us[idx] = u
	}

	return us, nil
}

func toDBModel(u domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		BirthDate: u.BirthDate,
		Phone:     u.Phone,
		Role:      int16(u.Role.Code()),

		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
		UpdatedBy: u.UpdatedBy,
		UpdatedAt: u.UpdatedAt,

		Deleted: u.Deleted,
	}
}
