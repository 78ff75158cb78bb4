package idea

import "context"

type Repository interface {
	Create(ctx context.Context, i *Idea) error
	Save(ctx context.Context, i *Idea) error
	GetByIdeaID(ctx context.Context, ideaID string) (*Idea, error)
	// Same lookup with a row lock, for workflows that read status before writing.
	GetByIdeaIDForUpdate(ctx context.Context, ideaID string) (*Idea, error)
	ListLive(ctx context.Context) ([]Idea, error)
	ListByFounderID(ctx context.Context, founderID string) ([]Idea, error)
	// Batched lookup used by the aggregation joins.
	ListByIDs(ctx context.Context, ids []uint64) ([]Idea, error)
}
