package mysql

import (
	"context"

	ideaDomain "ideafund-backend/internal/domain/idea"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IdeaRepository struct{ db *gorm.DB }

func NewIdeaRepository(db *gorm.DB) *IdeaRepository { return &IdeaRepository{db: db} }

func (r *IdeaRepository) Create(ctx context.Context, i *ideaDomain.Idea) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *IdeaRepository) Save(ctx context.Context, i *ideaDomain.Idea) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *IdeaRepository) GetByIdeaID(ctx context.Context, ideaID string) (*ideaDomain.Idea, error) {
	var out ideaDomain.Idea
	res := r.db.WithContext(ctx).Where("idea_id = ?", ideaID).First(&out)
	return &out, res.Error
}

func (r *IdeaRepository) GetByIdeaIDForUpdate(ctx context.Context, ideaID string) (*ideaDomain.Idea, error) {
	var out ideaDomain.Idea
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("idea_id = ?", ideaID).
		First(&out)
	return &out, res.Error
}

func (r *IdeaRepository) ListLive(ctx context.Context) ([]ideaDomain.Idea, error) {
	var out []ideaDomain.Idea
	res := r.db.WithContext(ctx).
		Where("status = ?", ideaDomain.StatusLive).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *IdeaRepository) ListByFounderID(ctx context.Context, founderID string) ([]ideaDomain.Idea, error) {
	var out []ideaDomain.Idea
	res := r.db.WithContext(ctx).
		Where("founder_id = ?", founderID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *IdeaRepository) ListByIDs(ctx context.Context, ids []uint64) ([]ideaDomain.Idea, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []ideaDomain.Idea
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}
