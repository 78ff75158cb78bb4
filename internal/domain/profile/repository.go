package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	// Batched lookup for resolving founder names in aggregation joins.
	ListByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
}
