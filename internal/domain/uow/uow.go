package uow

import (
	"context"

	"ideafund-backend/internal/domain/bookmark"
	"ideafund-backend/internal/domain/idea"
	"ideafund-backend/internal/domain/investment"
	"ideafund-backend/internal/domain/notification"
	"ideafund-backend/internal/domain/profile"
	"ideafund-backend/internal/domain/vote"
)

type Repos struct {
	Ideas         idea.Repository
	Investments   investment.Repository
	Votes         vote.Repository
	Bookmarks     bookmark.Repository
	Notifications notification.Repository
	Profiles      profile.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the idea row first, then pass it in
	WithinIdeaTx(ctx context.Context, ideaID string, fn func(r Repos, i *idea.Idea) error) error
}
