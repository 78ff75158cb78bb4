package mysql

import (
	"context"

	profileDomain "ideafund-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]profileDomain.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&out)
	return out, res.Error
}
