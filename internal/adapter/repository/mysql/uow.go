package mysql

import (
	"context"

	"ideafund-backend/internal/domain/idea"
	"ideafund-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Ideas:         &IdeaRepository{db: tx},
		Investments:   &InvestmentRepository{db: tx},
		Votes:         &VoteRepository{db: tx},
		Bookmarks:     &BookmarkRepository{db: tx},
		Notifications: &NotificationRepository{db: tx},
		Profiles:      &ProfileRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinIdeaTx(ctx context.Context, ideaID string, fn func(r uow.Repos, i *idea.Idea) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the idea row up-front to prevent races
		i, err := r.Ideas.GetByIdeaIDForUpdate(ctx, ideaID)
		if err != nil {
			return err
		}
		return fn(r, i)
	})
}
