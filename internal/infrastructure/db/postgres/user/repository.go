package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id user.UUID) (*user.User, error) {
	u := new(User)
	if err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(u.fields()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err)
	}

	return fromDBModel(u)
}

func (r *Repository) FindPaged(ctx context.Context, pageIdx, pageSize int) (page.Paged[*user.User], error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountUsers).Scan(&total); err != nil {
		return page.Paged[*user.User]{}, classify(err)
	}

	us, err := r.fetch(ctx, SelectUsersPage, pageSize, page.Offset(pageIdx, pageSize))
	if err != nil {
		return page.Paged[*user.User]{}, err
	}

	return page.New(us, pageIdx, pageSize, total), nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []user.UUID) (user.Users, error) {
	if len(ids) == 0 {
		return user.Users{}, nil
	}

	return r.fetch(ctx, SelectUsersByIDs, ids)
}

func (r *Repository) Save(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)
	if err := r.db.QueryRow(ctx, UpsertUser, toDBModel(req).values()...).Scan(u.fields()...); err != nil {
		return nil, classify(err)
	}

	return fromDBModel(u)
}

func (r *Repository) DeleteByID(ctx context.Context, id user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteUserByID, id)
	if err != nil {
		return false, classify(err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) fetch(ctx context.Context, sql string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)
		if err = rows.Scan(u.fields()...); err != nil {
			return nil, classify(err)
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, classify(err)
	}

	return fromDBModels(us)
}

// classify marks statement errors as data access failures so the use-cases can tell
// them apart from connection trouble, which is returned untouched.
func classify(err error) error {
	switch {
	case postgres.IsPgUniqueViolation(err):
		return fmt.Errorf("%w: %w", user.ErrEmailAlreadyExists, err)
	case postgres.IsStatementError(err):
		return fmt.Errorf("%w: %w", user.ErrDataAccess, err)
	default:
		return err
	}
}
