package notification

import (
	"context"
	"errors"

	domain "ideafund-backend/internal/domain/notification"
	"ideafund-backend/pkg/id"
)

var ErrEmptyMessage = errors.New("notification message must not be empty")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Notify is append-only; delivery transport is out of scope, durability is
// the only guarantee.
func (u *Usecase) Notify(ctx context.Context, userID, message string) (*NotificationDTO, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	n := &domain.Notification{
		NotificationID: id.NewID32(),
		UserID:         userID,
		Message:        message,
	}
	if err := u.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return &NotificationDTO{
		NotificationID: n.NotificationID,
		Message:        n.Message,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}, nil
}

func (u *Usecase) List(ctx context.Context, userID string) (*InboxDTO, error) {
	rows, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := u.repo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, NotificationDTO{
			NotificationID: n.NotificationID,
			Message:        n.Message,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		})
	}
	return &InboxDTO{Notifications: out, UnreadCount: unread}, nil
}

// MarkRead is idempotent: re-marking already-read notifications changes
// nothing and is not an error.
func (u *Usecase) MarkRead(ctx context.Context, userID string, notificationIDs []string) (*MarkReadDTO, error) {
	updated, err := u.repo.MarkRead(ctx, userID, notificationIDs)
	if err != nil {
		return nil, err
	}
	return &MarkReadDTO{Updated: updated}, nil
}
