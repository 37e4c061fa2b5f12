package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/db/memory"
	"user-service/internal/infrastructure/mq"
)

func TestDeleteUser_SoftDeletes(t *testing.T) {
	existing := existingUser()
	repo := repoWith(existing)
	pub := &recordingPublisher{}
	counter := newCounter()
	deleter := uuid.New()

	err := NewDeleteUser(repo, pub, counter, zap.NewNop()).Execute(context.Background(), DeleteUserCommand{
		ID:        existing.ID,
		DeletedBy: deleter,
	})
	require.NoError(t, err)

	saved := repo.Saved()
	require.Len(t, saved, 1)
	persisted := saved[0]

	assert.True(t, persisted.Deleted)
	require.NotNil(t, persisted.UpdatedBy)
	assert.Equal(t, deleter, *persisted.UpdatedBy)
	assert.Equal(t, existing.ID, persisted.ID)
	assert.Equal(t, existing.CreatedBy, persisted.CreatedBy)
	assert.Equal(t, existing.CreatedAt, persisted.CreatedAt)
	assert.Equal(t, existing.Name, persisted.Name)

	assert.Equal(t, []string{mq.ActionUserDeleted}, pub.Actions())
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("user_deleted_total")))
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := repoWith(nil)
	id := uuid.New()

	err := NewDeleteUser(repo, nil, nil, zap.NewNop()).Execute(context.Background(), DeleteUserCommand{ID: id, DeletedBy: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.Contains(t, err.Error(), id.String())
	assert.Empty(t, repo.Saved())
}

func TestDeleteUser_TwiceReportsNotFound(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()
	existing := existingUser()
	_, err := repo.Save(ctx, *existing)
	require.NoError(t, err)

	uc := NewDeleteUser(repo, nil, nil, zap.NewNop())

	require.NoError(t, uc.Execute(ctx, DeleteUserCommand{ID: existing.ID, DeletedBy: uuid.New()}))
	err = uc.Execute(ctx, DeleteUserCommand{ID: existing.ID, DeletedBy: uuid.New()})
	assert.ErrorIs(t, err, user.ErrNotFound)

	// the row is still physically present
	batch, err := repo.FindByIDs(ctx, []user.UUID{existing.ID})
	require.NoError(t, err)
	assert.Empty(t, batch)
	removed, err := repo.DeleteByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestDeleteUser_SaveFailure(t *testing.T) {
	existing := existingUser()
	repo := repoWith(existing)
	repo.SaveFunc = func(ctx context.Context, u user.User) (*user.User, error) {
		return nil, dataAccessErr("update rejected")
	}
	pub := &recordingPublisher{}

	err := NewDeleteUser(repo, pub, nil, zap.NewNop(), WithClock(fixedClock{time.Now()})).Execute(context.Background(), DeleteUserCommand{
		ID:        existing.ID,
		DeletedBy: uuid.New(),
	})

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, OpDeleteUser, f.Op)
	assert.Contains(t, err.Error(), existing.Name)
	assert.True(t, errors.Is(err, user.ErrDataAccess))
	assert.Empty(t, pub.Actions())
}
