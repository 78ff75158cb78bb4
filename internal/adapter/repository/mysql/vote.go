package mysql

import (
	"context"

	voteDomain "ideafund-backend/internal/domain/vote"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct{ db *gorm.DB }

func NewVoteRepository(db *gorm.DB) *VoteRepository { return &VoteRepository{db: db} }

func (r *VoteRepository) GetByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) (*voteDomain.Vote, error) {
	var out voteDomain.Vote
	res := r.db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		First(&out)
	return &out, res.Error
}

// Upsert relies on the (idea_id, user_id) unique index: a concurrent insert
// for the same pair becomes an update of value instead of a duplicate row.
func (r *VoteRepository) Upsert(ctx context.Context, v *voteDomain.Vote) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idea_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(v).Error
}

func (r *VoteRepository) DeleteByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) error {
	return r.db.WithContext(ctx).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Delete(&voteDomain.Vote{}).Error
}

func (r *VoteRepository) CountByIdeaID(ctx context.Context, ideaID uint64) (voteDomain.Counts, error) {
	var rows []struct {
		Value voteDomain.Value
		N     int64
	}
	res := r.db.WithContext(ctx).
		Model(&voteDomain.Vote{}).
		Where("idea_id = ?", ideaID).
		Select("value, COUNT(*) AS n").
		Group("value").
		Scan(&rows)
	if res.Error != nil {
		return voteDomain.Counts{}, res.Error
	}
	var c voteDomain.Counts
	for _, row := range rows {
		switch row.Value {
		case voteDomain.ValueUp:
			c.Upvotes = row.N
		case voteDomain.ValueDown:
			c.Downvotes = row.N
		}
	}
	return c, nil
}

func (r *VoteRepository) CountByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]voteDomain.Counts, error) {
	out := make(map[uint64]voteDomain.Counts, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		IdeaID uint64
		Value  voteDomain.Value
		N      int64
	}
	res := r.db.WithContext(ctx).
		Model(&voteDomain.Vote{}).
		Where("idea_id IN ?", ideaIDs).
		Select("idea_id, value, COUNT(*) AS n").
		Group("idea_id, value").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for _, row := range rows {
		c := out[row.IdeaID]
		switch row.Value {
		case voteDomain.ValueUp:
			c.Upvotes = row.N
		case voteDomain.ValueDown:
			c.Downvotes = row.N
		}
		out[row.IdeaID] = c
	}
	return out, nil
}
