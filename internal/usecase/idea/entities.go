package idea

import "time"

type CreateIdeaInput struct {
	FounderID   string  `json:"founder_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"`
	Stage       string  `json:"stage"`
	FundingGoal float64 `json:"funding_goal"`
}

type IdeaDTO struct {
	IdeaID      string    `json:"idea_id"`
	FounderID   string    `json:"founder_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Stage       string    `json:"stage"`
	FundingGoal float64   `json:"funding_goal"`
	Status      string    `json:"status"`
	TotalRaised float64   `json:"total_raised"`
	Upvotes     int64     `json:"upvotes"`
	Downvotes   int64     `json:"downvotes"`
	Score       int64     `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}
