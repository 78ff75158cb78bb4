package vote

import "context"

type Repository interface {
	GetByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) (*Vote, error)
	// Insert-or-update on the (idea, user) unique pair.
	Upsert(ctx context.Context, v *Vote) error
	DeleteByIdeaAndUser(ctx context.Context, ideaID uint64, userID string) error
	CountByIdeaID(ctx context.Context, ideaID uint64) (Counts, error)
	CountByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]Counts, error)
}
