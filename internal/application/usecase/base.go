package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

type Option func(*base)

func WithClock(c Clock) Option {
	return func(b *base) { b.clock = c }
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(b *base) { b.newID = gen }
}

// base carries what every use-case needs. It is immutable after construction,
// so a use-case value is safe for concurrent Execute calls.
type base struct {
	repo     user.Repository
	events   EventPublisher
	mCounter *prometheus.CounterVec
	log      *zap.Logger
	clock    Clock
	newID    IDGenerator
}

func newBase(
	op string,
	repo user.Repository,
	events EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	opts []Option,
) base {
	if events == nil {
		events = mq.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b := base{
		repo:     repo,
		events:   events,
		mCounter: mCounter,
		log:      logger.With(zap.String("op", op)),
		clock:    systemClock{},
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// storeErr turns data access errors into a Failure; anything else is passed through as is.
func (b base) storeErr(op, msg string, err error) error {
	if errors.Is(err, user.ErrDataAccess) {
		return &Failure{Op: op, Message: msg, Err: err}
	}
	return err
}

func (b base) publish(ctx context.Context, action string, u *user.User) {
	if u == nil {
		return
	}
	if err := b.events.Publish(ctx, mq.NewUserEvent(action, *u, b.clock.Now())); err != nil {
		b.log.Warn("user event not published",
			zap.String("action", action),
			zap.Stringer("user_id", u.ID),
			zap.Error(err),
		)
	}
}

func (b base) count(result string) {
	if b.mCounter != nil {
		b.mCounter.WithLabelValues(result).Inc()
	}
}
