package idea

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidInput      = errors.New("invalid idea input")
	ErrNotFound          = errors.New("idea not found")
	ErrClosed            = errors.New("idea is closed")
	ErrNotOwner          = errors.New("idea belongs to another founder")
	ErrInvalidTransition = errors.New("invalid idea status transition")
)

type Stage string

const (
	StageIdea        Stage = "idea"
	StageMVP         Stage = "mvp"
	StageScaling     Stage = "scaling"
	StageEstablished Stage = "established"
)

type Status string

const (
	StatusReview Status = "review"
	StatusLive   Status = "live"
	StatusClosed Status = "closed"
)

// total_raised is intentionally absent: it is derived from the investments
// table at read time, never stored alongside the idea row.
type Idea struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	IdeaID          string         `gorm:"size:32;uniqueIndex:ux_ideas_idea_id_active" json:"idea_id"`
	FounderID       string         `gorm:"size:32;index:idx_ideas_founder_active" json:"founder_id"`
	Title           string         `gorm:"size:255" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Industry        string         `gorm:"size:64" json:"industry"`
	Stage           Stage          `gorm:"type:enum('idea','mvp','scaling','established');default:'idea'" json:"stage"`
	FundingGoal     float64        `gorm:"type:decimal(18,2)" json:"funding_goal"`
	Status          Status         `gorm:"type:enum('review','live','closed');default:'review'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Idea) TableName() string { return "ideas" }
