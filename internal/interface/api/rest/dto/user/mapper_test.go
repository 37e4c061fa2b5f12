package user

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
)

type stubHasher struct{ err error }

func (s stubHasher) Hash(pw string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "hashed:" + pw, nil
}

func TestToCreateCommand(t *testing.T) {
	role := 1
	actor := uuid.New()
	req := CreateUserRequest{
		Name:      "Ana",
		Email:     "ana@example.com",
		Password:  "s3cret-pass",
		BirthDate: "1990-05-17",
		Phone:     "+5511988887777",
		Role:      &role,
	}

	cmd, err := ToCreateCommand(req, actor, stubHasher{})

	require.NoError(t, err)
	assert.Equal(t, "hashed:s3cret-pass", cmd.Password)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), cmd.BirthDate)
	assert.Equal(t, 1, cmd.RoleCode)
	assert.Equal(t, actor, cmd.CreatedBy)
	assert.Equal(t, "ana@example.com", cmd.Email)
}

func TestToCreateCommand_Errors(t *testing.T) {
	role := 2
	hashErr := errors.New("cost too high")

	_, err := ToCreateCommand(CreateUserRequest{BirthDate: "17/05/1990", Role: &role}, uuid.New(), stubHasher{})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	_, err = ToCreateCommand(CreateUserRequest{BirthDate: "1990-05-17", Role: &role}, uuid.New(), stubHasher{err: hashErr})
	assert.ErrorIs(t, err, hashErr)
}

func TestToUpdateCommand(t *testing.T) {
	id, actor := uuid.New(), uuid.New()

	cmd, err := ToUpdateCommand(id, UpdateUserRequest{
		Name:      "Ana Lima",
		Email:     "ana@example.com",
		Password:  "another-pass",
		BirthDate: "1990-05-17",
		Phone:     "+5511988887777",
	}, actor)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ID)
	assert.Equal(t, actor, cmd.UpdatedBy)
	assert.Equal(t, "Ana Lima", cmd.Name)
	assert.Empty(t, cmd.Password)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), cmd.BirthDate)

	_, err = ToUpdateCommand(id, UpdateUserRequest{BirthDate: "1990/05/17"}, actor)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestToPagedResponse(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &user.User{
		ID:        uuid.New(),
		Name:      "Ana",
		Email:     "ana@example.com",
		Password:  "hash",
		BirthDate: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Role:      user.RoleAdmin,
		CreatedAt: at,
	}

	res := ToPagedResponse(page.Paged[*user.User]{Items: []*user.User{u}, Page: 1, PageSize: 5, TotalItems: 8, TotalPages: 2})

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 5, res.PageSize)
	assert.Equal(t, int64(8), res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Items, 1)
	assert.Equal(t, u.ID, res.Items[0].ID)
	assert.Equal(t, "1990-05-17", res.Items[0].BirthDate)
	assert.Equal(t, user.RoleAdmin.Code(), res.Items[0].Role)
	assert.Nil(t, res.Items[0].UpdatedAt)
}
