package bookmark

import "time"

type Bookmark struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	IdeaID    uint64    `gorm:"not null;uniqueIndex:ux_bookmarks_idea_user" json:"-"`
	UserID    string    `gorm:"size:32;not null;uniqueIndex:ux_bookmarks_idea_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Bookmark) TableName() string { return "bookmarks" }
