package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		ID        UUID
		Name      string
		Email     string
		Password  string
		BirthDate time.Time
		Phone     string
		Role      Role

		CreatedBy UUID
		CreatedAt time.Time
		UpdatedBy *UUID
		UpdatedAt *time.Time

		Deleted bool
	}
	Users []*User
)

// WithName returns a copy of u with the name replaced and the modification stamped.
func (u User) WithName(name string, by UUID, at time.Time) User {
	u.Name = name
	u.stamp(by, at)

	return u
}

// WithDeleted returns a soft-deleted copy of u. The deleter is recorded as the last modifier.
func (u User) WithDeleted(by UUID, at time.Time) User {
	u.Deleted = true
	u.stamp(by, at)

	return u
}

func (u *User) stamp(by UUID, at time.Time) {
	u.UpdatedBy = &by
	u.UpdatedAt = &at
}

func (us Users) IDs() []UUID {
	ids := make([]UUID, len(us))
	for idx, u := range us {
		ids[idx] = u.ID
	}

	return ids
}
