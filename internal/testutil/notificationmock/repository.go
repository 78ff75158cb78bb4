package notificationmock

import (
	"context"

	domain "ideafund-backend/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, n *domain.Notification) error
	ListByUserIDFn        func(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadByUserIDFn func(ctx context.Context, userID string) (int64, error)
	MarkReadFn            func(ctx context.Context, userID string, notificationIDs []string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountUnreadByUserID(ctx context.Context, userID string) (int64, error) {
	if m.CountUnreadByUserIDFn != nil {
		return m.CountUnreadByUserIDFn(ctx, userID)
	}
	return 0, context.Canceled
}

func (m *Repo) MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error) {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, userID, notificationIDs)
	}
	return 0, context.Canceled
}
