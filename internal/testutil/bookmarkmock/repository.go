package bookmarkmock

import (
	"context"

	domain "ideafund-backend/internal/domain/bookmark"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AddFn           func(ctx context.Context, b *domain.Bookmark) error
	RemoveFn        func(ctx context.Context, ideaID uint64, userID string) error
	ExistsFn        func(ctx context.Context, ideaID uint64, userID string) (bool, error)
	ListByUserIDFn  func(ctx context.Context, userID string) ([]domain.Bookmark, error)
	CountByIdeaIDFn func(ctx context.Context, ideaID uint64) (int64, error)
}

func (m *Repo) Add(ctx context.Context, b *domain.Bookmark) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, b)
	}
	return nil
}

func (m *Repo) Remove(ctx context.Context, ideaID uint64, userID string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, ideaID, userID)
	}
	return nil
}

func (m *Repo) Exists(ctx context.Context, ideaID uint64, userID string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, ideaID, userID)
	}
	return false, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByIdeaID(ctx context.Context, ideaID uint64) (int64, error) {
	if m.CountByIdeaIDFn != nil {
		return m.CountByIdeaIDFn(ctx, ideaID)
	}
	return 0, context.Canceled
}
