package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

type DeleteUserCommand struct {
	ID        uuid.UUID
	DeletedBy uuid.UUID
}

// DeleteUser soft-deletes: the row is flagged and kept. Deleting twice
// reports ErrNotFound because lookups skip deleted rows.
type DeleteUser struct {
	base
}

func NewDeleteUser(
	repo user.Repository,
	events EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	opts ...Option,
) *DeleteUser {
	return &DeleteUser{base: newBase(OpDeleteUser, repo, events, mCounter, logger, opts)}
}

func (uc *DeleteUser) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	existing, err := uc.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return uc.storeErr(OpDeleteUser, "failed to look up user "+cmd.ID.String(), err)
	}
	if existing == nil {
		uc.log.Warn("user not found", zap.Stringer("user_id", cmd.ID))
		return fmt.Errorf("[%s] user %s: %w", OpDeleteUser, cmd.ID, user.ErrNotFound)
	}

	deleted := existing.WithDeleted(cmd.DeletedBy, uc.clock.Now())

	saved, err := uc.repo.Save(ctx, deleted)
	if err != nil {
		uc.log.Error("failed to delete user", zap.String("name", existing.Name), zap.Error(err))
		return uc.storeErr(OpDeleteUser, "failed to delete user "+existing.Name, err)
	}

	uc.log.Debug("user deleted", zap.Stringer("user_id", cmd.ID), zap.String("name", existing.Name))
	uc.publish(ctx, mq.ActionUserDeleted, saved)
	uc.count("user_deleted_total")

	return nil
}
