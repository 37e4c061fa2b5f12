package user

import (
	"context"

	"user-service/internal/domain/page"
)

// Repository is the store contract. Every read path skips soft-deleted rows;
// FindByID returns (nil, nil) when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id UUID) (*User, error)
	FindPaged(ctx context.Context, pageIdx, pageSize int) (page.Paged[*User], error)
	FindByIDs(ctx context.Context, ids []UUID) (Users, error)
	Save(ctx context.Context, u User) (*User, error)
	DeleteByID(ctx context.Context, id UUID) (bool, error)
}
