package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
)

type GetUserByIDQuery struct {
	ID uuid.UUID
}

type GetUserByID struct {
	base
}

func NewGetUserByID(
	repo user.Repository,
	logger *zap.Logger,
) *GetUserByID {
	return &GetUserByID{base: newBase(OpGetUserByID, repo, nil, nil, logger, nil)}
}

// Execute returns (nil, nil) when the user does not exist or was deleted.
func (uc *GetUserByID) Execute(ctx context.Context, q GetUserByIDQuery) (*user.User, error) {
	u, err := uc.repo.FindByID(ctx, q.ID)
	if err != nil {
		uc.log.Error("failed to find user", zap.Stringer("user_id", q.ID), zap.Error(err))
		return nil, uc.storeErr(OpGetUserByID, "failed to find user with id "+q.ID.String(), err)
	}

	if u == nil {
		uc.log.Debug("user not found", zap.Stringer("user_id", q.ID))
		return nil, nil
	}

	uc.log.Debug("user found", zap.Stringer("user_id", q.ID), zap.String("name", u.Name))

	return u, nil
}
