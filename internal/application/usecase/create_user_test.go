package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func createCommand(role int) CreateUserCommand {
	return CreateUserCommand{
		Name:      "X",
		Email:     "x@example.com",
		Password:  "hash",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:     "+5511999990000",
		RoleCode:  role,
		CreatedBy: uuid.New(),
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo := &FakeRepository{}
	pub := &recordingPublisher{}
	counter := newCounter()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	uc := NewCreateUser(repo, pub, counter, zap.NewNop(),
		WithClock(fixedClock{now}),
		WithIDGenerator(func() uuid.UUID { return id }),
	)
	cmd := createCommand(1)

	u, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, id, u.ID)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.Deleted)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.Equal(t, "X", u.Name)
	assert.Equal(t, cmd.CreatedBy, u.CreatedBy)
	assert.Equal(t, now, u.CreatedAt)
	assert.Nil(t, u.UpdatedBy)

	require.Len(t, repo.Saved(), 1)
	assert.Equal(t, []string{mq.ActionUserCreated}, pub.Actions())
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("user_created_total")))
}

func TestCreateUser_GeneratesFreshIDs(t *testing.T) {
	uc := NewCreateUser(&FakeRepository{}, nil, nil, nil)

	a, err := uc.Execute(context.Background(), createCommand(2))
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), createCommand(2))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateUser_ReturnsStoredEntity(t *testing.T) {
	stored := &user.User{ID: uuid.New(), Name: "from store", Role: user.RoleUser}
	repo := &FakeRepository{
		SaveFunc: func(ctx context.Context, u user.User) (*user.User, error) { return stored, nil },
	}

	u, err := NewCreateUser(repo, nil, nil, nil).Execute(context.Background(), createCommand(2))
	require.NoError(t, err)
	assert.Same(t, stored, u)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	for _, code := range []int{-1, 3, 42} {
		repo := &FakeRepository{}
		pub := &recordingPublisher{}

		u, err := NewCreateUser(repo, pub, newCounter(), zap.NewNop()).Execute(context.Background(), createCommand(code))

		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrUnknownRole)
		assert.Nil(t, u)
		assert.Empty(t, repo.Saved(), "store must not be touched")
		assert.Empty(t, pub.Actions())
	}
}

func TestCreateUser_StoreErrors(t *testing.T) {
	connErr := errors.New("connection refused")

	tests := []struct {
		name        string
		storeErr    error
		wantFailure bool
	}{
		{name: "data access error is wrapped", storeErr: dataAccessErr("insert rejected"), wantFailure: true},
		{name: "other errors pass through", storeErr: connErr},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &FakeRepository{
				SaveFunc: func(ctx context.Context, u user.User) (*user.User, error) { return nil, tt.storeErr },
			}
			pub := &recordingPublisher{}

			u, err := NewCreateUser(repo, pub, nil, zap.NewNop()).Execute(context.Background(), createCommand(0))

			require.Error(t, err)
			assert.Nil(t, u)
			assert.Empty(t, pub.Actions())

			var f *Failure
			if tt.wantFailure {
				require.ErrorAs(t, err, &f)
				assert.Equal(t, OpCreateUser, f.Op)
				assert.Contains(t, err.Error(), "X")
				assert.ErrorIs(t, err, user.ErrDataAccess)
				return
			}
			assert.False(t, errors.As(err, &f))
			assert.Same(t, connErr, err)
		})
	}
}

func TestCreateUser_PublishFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pub := &recordingPublisher{err: mq.ErrPublishBufferFull}

	u, err := NewCreateUser(&FakeRepository{}, pub, nil, zap.New(core)).Execute(context.Background(), createCommand(2))

	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, 1, logs.FilterMessage("user event not published").Len())
	entry := logs.FilterMessage("user event not published").All()[0]
	assert.Equal(t, OpCreateUser, entry.ContextMap()["op"])
}

func TestCreateUser_LogsStoredID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	storedID := uuid.New()
	repo := &FakeRepository{
		SaveFunc: func(ctx context.Context, u user.User) (*user.User, error) {
			u.ID = storedID
			return &u, nil
		},
	}

	u, err := NewCreateUser(repo, nil, nil, zap.New(core)).Execute(context.Background(), createCommand(2))
	require.NoError(t, err)
	assert.Equal(t, storedID, u.ID)

	entries := logs.FilterMessage("user created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, storedID.String(), entries[0].ContextMap()["user_id"])
}
