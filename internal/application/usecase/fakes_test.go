package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"user-service/internal/domain/page"
	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/mq"
)

type FakeRepository struct {
	FindByIDFunc   func(ctx context.Context, id user.UUID) (*user.User, error)
	FindPagedFunc  func(ctx context.Context, pageIdx, pageSize int) (page.Paged[*user.User], error)
	FindByIDsFunc  func(ctx context.Context, ids []user.UUID) (user.Users, error)
	SaveFunc       func(ctx context.Context, u user.User) (*user.User, error)
	DeleteByIDFunc func(ctx context.Context, id user.UUID) (bool, error)

	mu    sync.Mutex
	saved []user.User
}

func (f *FakeRepository) FindByID(ctx context.Context, id user.UUID) (*user.User, error) {
	if f.FindByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByIDFunc(ctx, id)
}

func (f *FakeRepository) FindPaged(ctx context.Context, pageIdx, pageSize int) (page.Paged[*user.User], error) {
	if f.FindPagedFunc == nil {
		return page.Paged[*user.User]{}, errors.New("not used")
	}
	return f.FindPagedFunc(ctx, pageIdx, pageSize)
}

func (f *FakeRepository) FindByIDs(ctx context.Context, ids []user.UUID) (user.Users, error) {
	if f.FindByIDsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByIDsFunc(ctx, ids)
}

func (f *FakeRepository) Save(ctx context.Context, u user.User) (*user.User, error) {
	f.mu.Lock()
	f.saved = append(f.saved, u)
	f.mu.Unlock()

	if f.SaveFunc == nil {
		return &u, nil
	}
	return f.SaveFunc(ctx, u)
}

func (f *FakeRepository) DeleteByID(ctx context.Context, id user.UUID) (bool, error) {
	if f.DeleteByIDFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteByIDFunc(ctx, id)
}

func (f *FakeRepository) Saved() []user.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]user.User(nil), f.saved...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []mq.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e mq.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func dataAccessErr(msg string) error {
	return errors.Join(user.ErrDataAccess, errors.New(msg))
}
