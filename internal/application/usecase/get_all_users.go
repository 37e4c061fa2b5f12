package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
)

type GetAllUsersQuery struct {
	Page     int
	PageSize int
}

type GetAllUsers struct {
	base
}

func NewGetAllUsers(
	repo user.Repository,
	logger *zap.Logger,
) *GetAllUsers {
	return &GetAllUsers{base: newBase(OpGetAllUsers, repo, nil, nil, logger, nil)}
}

// Execute hands the page request to the store; order and totals are the store's.
func (uc *GetAllUsers) Execute(ctx context.Context, q GetAllUsersQuery) (page.Paged[*user.User], error) {
	if q.Page < 0 || q.PageSize < 1 {
		return page.Paged[*user.User]{}, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidPage, q.Page, q.PageSize)
	}

	users, err := uc.repo.FindPaged(ctx, q.Page, q.PageSize)
	if err != nil {
		return page.Paged[*user.User]{}, err
	}

	if len(users.Items) > 0 {
		uc.log.Debug("users found", zap.Int64("total_items", users.TotalItems), zap.Int("page", q.Page))
	} else {
		uc.log.Debug("no users found", zap.Int("page", q.Page))
	}

	return users, nil
}
