package bookmark

import "time"

type BookmarkDTO struct {
	IdeaID     string `json:"idea_id"`
	Bookmarked bool   `json:"bookmarked"`
	Count      int64  `json:"count"`
}

type BookmarkedIdeaDTO struct {
	IdeaID       string    `json:"idea_id"`
	Title        string    `json:"title"`
	Industry     string    `json:"industry"`
	Stage        string    `json:"stage"`
	BookmarkedAt time.Time `json:"bookmarked_at"`
}
