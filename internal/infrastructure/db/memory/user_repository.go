package memory

import (
	"context"
	"slices"
	"sync"

	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
)

// UserRepository keeps users in process memory in insertion order.
// Emails are unique across all rows, deleted ones included, like the users table.
// Rows are stored and returned by value so callers never share state with the store.
type UserRepository struct {
	mu    sync.RWMutex
	rows  map[user.UUID]user.User
	order []user.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{rows: make(map[user.UUID]user.User)}
}

func (r *UserRepository) FindByID(ctx context.Context, id user.UUID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.rows[id]
	if !ok || u.Deleted {
		return nil, nil
	}

	return &u, nil
}

func (r *UserRepository) FindPaged(ctx context.Context, pageIdx, pageSize int) (page.Paged[*user.User], error) {
	if err := ctx.Err(); err != nil {
		return page.Paged[*user.User]{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	alive := make(user.Users, 0, len(r.order))
	for _, id := range r.order {
		if u := r.rows[id]; !u.Deleted {
			alive = append(alive, &u)
		}
	}

	var items user.Users
	if from := page.Offset(pageIdx, pageSize); from < len(alive) {
		items = alive[from:min(from+pageSize, len(alive))]
	}

	return page.New(items, pageIdx, pageSize, int64(len(alive))), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []user.UUID) (user.Users, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(user.Users, 0, len(ids))
	seen := make(map[user.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if u, ok := r.rows[id]; ok && !u.Deleted {
			us = append(us, &u)
		}
	}

	return us, nil
}

func (r *UserRepository) Save(ctx context.Context, u user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, other := range r.rows {
		if id != u.ID && other.Email == u.Email {
			return nil, user.ErrEmailAlreadyExists
		}
	}

	if _, ok := r.rows[u.ID]; !ok {
		r.order = append(r.order, u.ID)
	}
	r.rows[u.ID] = u

	return &u, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id user.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	r.order = slices.DeleteFunc(r.order, func(v user.UUID) bool { return v == id })

	return true, nil
}
