package investment

import (
	"time"
)

type InvestInput struct {
	IdeaID     string  `json:"idea_id"`
	InvestorID string  `json:"investor_id"`
	Amount     float64 `json:"amount"`
}

type InvestmentDTO struct {
	InvestmentID  string    `json:"investment_id"`
	IdeaID        string    `json:"idea_id"`
	InvestorID    string    `json:"investor_id"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	TotalRaised   float64   `json:"total_raised"`
	CreatedAt     time.Time `json:"created_at"`
}

type WithdrawDTO struct {
	InvestmentID  string  `json:"investment_id"`
	IdeaID        string  `json:"idea_id"`
	PaymentStatus string  `json:"payment_status"`
	TotalRaised   float64 `json:"total_raised"`
}
