package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"user-service/internal/infrastructure/mq"
)

type (
	Clock interface {
		Now() time.Time
	}
	EventPublisher interface {
		Publish(ctx context.Context, e mq.Event) error
	}
	IDGenerator func() uuid.UUID
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
