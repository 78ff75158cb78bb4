package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUserID(ctx context.Context, userID string) ([]Notification, error)
	CountUnreadByUserID(ctx context.Context, userID string) (int64, error)
	// MarkRead sets is_read on the given notifications owned by userID and
	// returns the number of rows that actually changed. Already-read rows are
	// skipped, not errors.
	MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error)
}
