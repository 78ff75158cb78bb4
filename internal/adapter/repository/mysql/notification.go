package mysql

import (
	"context"

	notificationDomain "ideafund-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) CountUnreadByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n)
	return n, res.Error
}

// The is_read filter makes re-marking idempotent: already-read rows simply
// do not count toward RowsAffected.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("user_id = ? AND notification_id IN ? AND is_read = ?", userID, notificationIDs, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
