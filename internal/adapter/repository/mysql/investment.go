package mysql

import (
	"context"

	investmentDomain "ideafund-backend/internal/domain/investment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*investmentDomain.Investment, error) {
	var out investmentDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*investmentDomain.Investment, error) {
	var out investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("investment_id = ?", investmentID).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByIdeaID(ctx context.Context, ideaID uint64) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) SumSuccessfulByIdeaID(ctx context.Context, ideaID uint64) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("idea_id = ? AND payment_status = ?", ideaID, investmentDomain.StatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *InvestmentRepository) SumSuccessfulByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]float64, error) {
	out := make(map[uint64]float64, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		IdeaID uint64
		Total  float64
	}
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("idea_id IN ? AND payment_status = ?", ideaIDs, investmentDomain.StatusSuccess).
		Select("idea_id, COALESCE(SUM(amount), 0) AS total").
		Group("idea_id").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for _, row := range rows {
		out[row.IdeaID] = row.Total
	}
	return out, nil
}

func (r *InvestmentRepository) SumSuccessfulByInvestorID(ctx context.Context, investorID string) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("investor_id = ? AND payment_status = ?", investorID, investmentDomain.StatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}
