package votemock

import (
	"context"

	domain "ideafund-backend/internal/domain/vote"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIdeaAndUserFn    func(ctx context.Context, ideaID uint64, userID string) (*domain.Vote, error)
	UpsertFn              func(ctx context.Context, v *domain.Vote) error
	DeleteByIdeaAndUserFn func(ctx context.Context, ideaID uint64, userID string) error
	CountByIdeaIDFn       func(ctx context.Context, ideaID uint64) (domain.Counts, error)
	CountByIdeaIDsFn      func(ctx context.Context, ideaIDs []uint64) (map[uint64]domain.Counts, error)
}

func (m *Repo) GetByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) (*domain.Vote, error) {
	if m.GetByIdeaAndUserFn != nil {
		return m.GetByIdeaAndUserFn(ctx, ideaID, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Upsert(ctx context.Context, v *domain.Vote) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, v)
	}
	return nil
}

func (m *Repo) DeleteByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) error {
	if m.DeleteByIdeaAndUserFn != nil {
		return m.DeleteByIdeaAndUserFn(ctx, ideaID, userID)
	}
	return nil
}

func (m *Repo) CountByIdeaID(ctx context.Context, ideaID uint64) (domain.Counts, error) {
	if m.CountByIdeaIDFn != nil {
		return m.CountByIdeaIDFn(ctx, ideaID)
	}
	return domain.Counts{}, context.Canceled
}

func (m *Repo) CountByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]domain.Counts, error) {
	if m.CountByIdeaIDsFn != nil {
		return m.CountByIdeaIDsFn(ctx, ideaIDs)
	}
	return nil, context.Canceled
}
