package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	Save(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*Investment, error)
	ListByInvestorID(ctx context.Context, investorID string) ([]Investment, error)
	ListByIdeaID(ctx context.Context, ideaID uint64) ([]Investment, error)

	// Aggregates over rows with payment_status = success. Query-time sums keep
	// concurrent invests commutative without a cached counter.
	SumSuccessfulByIdeaID(ctx context.Context, ideaID uint64) (float64, error)
	SumSuccessfulByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]float64, error)
	SumSuccessfulByInvestorID(ctx context.Context, investorID string) (float64, error)
}
