package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

type CreateUserCommand struct {
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
	Phone     string
	RoleCode  int
	CreatedBy uuid.UUID
}

type CreateUser struct {
	base
}

func NewCreateUser(
	repo user.Repository,
	events EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	opts ...Option,
) *CreateUser {
	return &CreateUser{base: newBase(OpCreateUser, repo, events, mCounter, logger, opts)}
}

func (uc *CreateUser) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	role, err := user.RoleFromCode(cmd.RoleCode)
	if err != nil {
		uc.log.Warn("rejected role code", zap.Int("role", cmd.RoleCode))
		return nil, err
	}

	u := user.User{
		ID:        uc.newID(),
		Name:      cmd.Name,
		Email:     cmd.Email,
		Password:  cmd.Password,
		BirthDate: cmd.BirthDate,
		Phone:     cmd.Phone,
		Role:      role,
		CreatedBy: cmd.CreatedBy,
		CreatedAt: uc.clock.Now(),
	}

	saved, err := uc.repo.Save(ctx, u)
	if err != nil {
		uc.log.Error("failed to create user", zap.String("name", cmd.Name), zap.Error(err))
		return nil, uc.storeErr(OpCreateUser, "failed to create user "+cmd.Name, err)
	}

	uc.log.Debug("user created", zap.Stringer("user_id", saved.ID), zap.String("name", cmd.Name))
	uc.publish(ctx, mq.ActionUserCreated, saved)
	uc.count("user_created_total")

	return saved, nil
}
