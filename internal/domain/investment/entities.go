package investment

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("investment not found")
	ErrNotOwner          = errors.New("investment belongs to another investor")
	ErrInvalidAmount     = errors.New("investment amount must be positive")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusSuccess   PaymentStatus = "success"
	StatusFailed    PaymentStatus = "failed"
	StatusWithdrawn PaymentStatus = "withdrawn"
)

// Allowed transitions: pending->success, pending->failed, success->withdrawn.
// failed and withdrawn are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusSuccess || next == StatusFailed
	case StatusSuccess:
		return next == StatusWithdrawn
	}
	return false
}

type Investment struct {
	ID              uint64        `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID    string        `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	IdeaID          uint64        `gorm:"not null;index:idx_investments_idea" json:"-"`
	InvestorID      string        `gorm:"size:32;not null;index:idx_investments_investor" json:"investor_id"`
	Amount          float64       `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentStatus   PaymentStatus `gorm:"type:enum('pending','success','failed','withdrawn');default:'pending'" json:"payment_status"`
	StatusUpdatedAt time.Time     `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Investment) TableName() string { return "investments" }
