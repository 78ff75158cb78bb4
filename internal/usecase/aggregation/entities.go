package aggregation

type VoteCountsDTO struct {
	IdeaID    string `json:"idea_id"`
	Upvotes   int64  `json:"upvotes"`
	Downvotes int64  `json:"downvotes"`
	Score     int64  `json:"score"`
}

type TotalRaisedDTO struct {
	IdeaID      string  `json:"idea_id"`
	TotalRaised float64 `json:"total_raised"`
}

type HoldingDTO struct {
	IdeaID   string  `json:"idea_id"`
	Title    string  `json:"title"`
	Founder  string  `json:"founder"`
	Industry string  `json:"industry"`
	Stage    string  `json:"stage"`
	Amount   float64 `json:"amount"`
}

type TransactionDTO struct {
	InvestmentID string  `json:"investment_id"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
}

type PortfolioDTO struct {
	TotalInvestment    float64          `json:"total_investment"`
	CurrentValue       float64          `json:"current_value"`
	Gain               float64          `json:"gain"`
	GainPercentage     int              `json:"gain_percentage"`
	Holdings           []HoldingDTO     `json:"holdings"`
	RecentTransactions []TransactionDTO `json:"recent_transactions"`
}
