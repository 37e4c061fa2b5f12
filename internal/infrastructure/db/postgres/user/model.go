package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID
		Name      string
		Email     string
		Password  string
		BirthDate time.Time
		Phone     string
		Role      int16

		CreatedBy uuid.UUID
		CreatedAt time.Time
		UpdatedBy *uuid.UUID
		UpdatedAt *time.Time

		Deleted bool
	}
	Users []*User
)

// fields returns scan destinations in the order of userColumns.
func (u *User) fields() []any {
	return []any{
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.BirthDate,
		&u.Phone,
		&u.Role,

		&u.CreatedBy,
		&u.CreatedAt,
		&u.UpdatedBy,
		&u.UpdatedAt,

		&u.Deleted,
	}
}

// values returns statement arguments in the order of userColumns.
func (u *User) values() []any {
	return []any{
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		u.BirthDate,
		u.Phone,
		u.Role,

		u.CreatedBy,
		u.CreatedAt,
		u.UpdatedBy,
		u.UpdatedAt,

		u.Deleted,
	}
}
