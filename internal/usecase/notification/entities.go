package notification

import "time"

type NotificationDTO struct {
	NotificationID string    `json:"notification_id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type InboxDTO struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int64             `json:"unread_count"`
}

type MarkReadDTO struct {
	Updated int64 `json:"updated"`
}
