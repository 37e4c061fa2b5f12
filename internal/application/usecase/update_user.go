package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

// UpdateUserCommand carries the full editable profile, but only Name is applied;
// the other profile fields are kept from the stored user.
type UpdateUserCommand struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
	Phone     string
	UpdatedBy uuid.UUID
}

type UpdateUser struct {
	base
}

func NewUpdateUser(
	repo user.Repository,
	events EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	opts ...Option,
) *UpdateUser {
	return &UpdateUser{base: newBase(OpUpdateUser, repo, events, mCounter, logger, opts)}
}

func (uc *UpdateUser) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	existing, err := uc.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, uc.storeErr(OpUpdateUser, "failed to look up user "+cmd.ID.String(), err)
	}
	if existing == nil {
		uc.log.Warn("user not found", zap.Stringer("user_id", cmd.ID))
		return nil, fmt.Errorf("[%s] user %s: %w", OpUpdateUser, cmd.ID, user.ErrNotFound)
	}

	updated := existing.WithName(cmd.Name, cmd.UpdatedBy, uc.clock.Now())

	saved, err := uc.repo.Save(ctx, updated)
	if err != nil {
		uc.log.Error("failed to update user", zap.String("name", cmd.Name), zap.Error(err))
		return nil, uc.storeErr(OpUpdateUser, "failed to update user "+cmd.Name, err)
	}

	uc.log.Debug("user updated",
		zap.Stringer("user_id", cmd.ID),
		zap.String("from", existing.Name),
		zap.String("to", cmd.Name),
	)
	uc.publish(ctx, mq.ActionUserUpdated, saved)
	uc.count("user_updated_total")

	return saved, nil
}
