package investmentmock

import (
	"context"

	domain "ideafund-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, inv *domain.Investment) error
	SaveFn                       func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn          func(ctx context.Context, investmentID string) (*domain.Investment, error)
	GetByInvestmentIDForUpdateFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListByInvestorIDFn           func(ctx context.Context, investorID string) ([]domain.Investment, error)
	ListByIdeaIDFn               func(ctx context.Context, ideaID uint64) ([]domain.Investment, error)
	SumSuccessfulByIdeaIDFn      func(ctx context.Context, ideaID uint64) (float64, error)
	SumSuccessfulByIdeaIDsFn     func(ctx context.Context, ideaIDs []uint64) (map[uint64]float64, error)
	SumSuccessfulByInvestorIDFn  func(ctx context.Context, investorID string) (float64, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDForUpdateFn != nil {
		return m.GetByInvestmentIDForUpdateFn(ctx, investmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByInvestorID(ctx context.Context, investorID string) ([]domain.Investment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByIdeaID(ctx context.Context, ideaID uint64) ([]domain.Investment, error) {
	if m.ListByIdeaIDFn != nil {
		return m.ListByIdeaIDFn(ctx, ideaID)
	}
	return nil, context.Canceled
}

func (m *Repo) SumSuccessfulByIdeaID(ctx context.Context, ideaID uint64) (float64, error) {
	if m.SumSuccessfulByIdeaIDFn != nil {
		return m.SumSuccessfulByIdeaIDFn(ctx, ideaID)
	}
	return 0, context.Canceled
}

func (m *Repo) SumSuccessfulByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]float64, error) {
	if m.SumSuccessfulByIdeaIDsFn != nil {
		return m.SumSuccessfulByIdeaIDsFn(ctx, ideaIDs)
	}
	return nil, context.Canceled
}

func (m *Repo) SumSuccessfulByInvestorID(ctx context.Context, investorID string) (float64, error) {
	if m.SumSuccessfulByInvestorIDFn != nil {
		return m.SumSuccessfulByInvestorIDFn(ctx, investorID)
	}
	return 0, context.Canceled
}
