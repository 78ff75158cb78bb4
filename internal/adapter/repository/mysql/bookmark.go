package mysql

import (
	"context"
	"errors"

	bookmarkDomain "ideafund-backend/internal/domain/bookmark"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct{ db *gorm.DB }

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository { return &BookmarkRepository{db: db} }

// Add swallows the duplicate-pair conflict: bookmarking twice is a no-op.
func (r *BookmarkRepository) Add(ctx context.Context, b *bookmarkDomain.Bookmark) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idea_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(b).Error
}

func (r *BookmarkRepository) Remove(ctx context.Context, ideaID uint64, userID string) error {
	return r.db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Delete(&bookmarkDomain.Bookmark{}).Error
}

func (r *BookmarkRepository) Exists(ctx context.Context, ideaID uint64, userID string) (bool, error) {
	var out bookmarkDomain.Bookmark
	res := r.db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, res.Error
	}
	return true, nil
}

func (r *BookmarkRepository) ListByUserID(ctx context.Context, userID string) ([]bookmarkDomain.Bookmark, error) {
	var out []bookmarkDomain.Bookmark
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *BookmarkRepository) CountByIdeaID(ctx context.Context, ideaID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&bookmarkDomain.Bookmark{}).
		Where("idea_id = ?", ideaID).
		Count(&n)
	return n, res.Error
}
