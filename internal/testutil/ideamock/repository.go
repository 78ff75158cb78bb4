package ideamock

import (
	"context"

	domain "ideafund-backend/internal/domain/idea"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the fields a test needs; unfilled ones return context.Canceled.
type Repo struct {
	CreateFn               func(ctx context.Context, i *domain.Idea) error
	SaveFn                 func(ctx context.Context, i *domain.Idea) error
	GetByIdeaIDFn          func(ctx context.Context, ideaID string) (*domain.Idea, error)
	GetByIdeaIDForUpdateFn func(ctx context.Context, ideaID string) (*domain.Idea, error)
	ListLiveFn             func(ctx context.Context) ([]domain.Idea, error)
	ListByFounderIDFn      func(ctx context.Context, founderID string) ([]domain.Idea, error)
	ListByIDsFn            func(ctx context.Context, ids []uint64) ([]domain.Idea, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Idea) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, i *domain.Idea) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByIdeaID(ctx context.Context, ideaID string) (*domain.Idea, error) {
	if m.GetByIdeaIDFn != nil {
		return m.GetByIdeaIDFn(ctx, ideaID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIdeaIDForUpdate(ctx context.Context, ideaID string) (*domain.Idea, error) {
	if m.GetByIdeaIDForUpdateFn != nil {
		return m.GetByIdeaIDForUpdateFn(ctx, ideaID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListLive(ctx context.Context) ([]domain.Idea, error) {
	if m.ListLiveFn != nil {
		return m.ListLiveFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByFounderID(ctx context.Context, founderID string) ([]domain.Idea, error) {
	if m.ListByFounderIDFn != nil {
		return m.ListByFounderIDFn(ctx, founderID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Idea, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}
