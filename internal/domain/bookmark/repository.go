package bookmark

import "context"

type Repository interface {
	// Add is idempotent: inserting an existing (idea, user) pair is a no-op.
	Add(ctx context.Context, b *Bookmark) error
	// Remove is idempotent: deleting a missing pair is a no-op.
	Remove(ctx context.Context, ideaID uint64, userID string) error
	Exists(ctx context.Context, ideaID uint64, userID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]Bookmark, error)
	CountByIdeaID(ctx context.Context, ideaID uint64) (int64, error)
}
