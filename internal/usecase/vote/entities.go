package vote

type CastInput struct {
	IdeaID string `json:"idea_id"`
	UserID string `json:"user_id"`
	Value  string `json:"value"`
}

// UserVote is empty when the cast retracted an existing vote.
type VoteDTO struct {
	IdeaID    string `json:"idea_id"`
	UserVote  string `json:"user_vote"`
	Upvotes   int64  `json:"upvotes"`
	Downvotes int64  `json:"downvotes"`
	Score     int64  `json:"score"`
}
