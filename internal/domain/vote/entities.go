package vote

import (
	"errors"
	"time"
)

var (
	ErrInvalidValue = errors.New("vote value must be up or down")
)

type Value string

const (
	ValueUp   Value = "up"
	ValueDown Value = "down"
)

// At most one row per (idea, user); the composite unique index is the
// serialization point for concurrent casts on the same pair.
type Vote struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	IdeaID    uint64    `gorm:"not null;uniqueIndex:ux_votes_idea_user" json:"-"`
	UserID    string    `gorm:"size:32;not null;uniqueIndex:ux_votes_idea_user" json:"user_id"`
	Value     Value     `gorm:"type:enum('up','down');not null" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Vote) TableName() string { return "idea_votes" }

type Counts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}

func (c Counts) Score() int64 { return c.Upvotes - c.Downvotes }
