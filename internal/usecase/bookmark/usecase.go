package bookmark

import (
	"context"
	"errors"

	domainBookmark "ideafund-backend/internal/domain/bookmark"
	domainIdea "ideafund-backend/internal/domain/idea"

	"gorm.io/gorm"
)

type Usecase struct {
	ideaRepo     domainIdea.Repository
	bookmarkRepo domainBookmark.Repository
}

func NewUsecase(ideas domainIdea.Repository, bookmarks domainBookmark.Repository) *Usecase {
	return &Usecase{ideaRepo: ideas, bookmarkRepo: bookmarks}
}

func (u *Usecase) resolveIdea(ctx context.Context, ideaID string) (*domainIdea.Idea, error) {
	i, err := u.ideaRepo.GetByIdeaID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainIdea.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

// Add is idempotent: bookmarking an already-bookmarked idea is a no-op.
func (u *Usecase) Add(ctx context.Context, ideaID, userID string) (*BookmarkDTO, error) {
	i, err := u.resolveIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if err := u.bookmarkRepo.Add(ctx, &domainBookmark.Bookmark{IdeaID: i.ID, UserID: userID}); err != nil {
		return nil, err
	}
	count, err := u.bookmarkRepo.CountByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	return &BookmarkDTO{IdeaID: i.IdeaID, Bookmarked: true, Count: count}, nil
}

// Remove is idempotent: removing a missing bookmark is a no-op.
func (u *Usecase) Remove(ctx context.Context, ideaID, userID string) (*BookmarkDTO, error) {
	i, err := u.resolveIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if err := u.bookmarkRepo.Remove(ctx, i.ID, userID); err != nil {
		return nil, err
	}
	count, err := u.bookmarkRepo.CountByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	return &BookmarkDTO{IdeaID: i.IdeaID, Bookmarked: false, Count: count}, nil
}

// List resolves the caller's bookmarks to idea summaries via one batched
// idea lookup.
func (u *Usecase) List(ctx context.Context, userID string) ([]BookmarkedIdeaDTO, error) {
	marks, err := u.bookmarkRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return []BookmarkedIdeaDTO{}, nil
	}

	ids := make([]uint64, 0, len(marks))
	for _, m := range marks {
		ids = append(ids, m.IdeaID)
	}
	ideas, err := u.ideaRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]domainIdea.Idea, len(ideas))
	for _, i := range ideas {
		byID[i.ID] = i
	}

	out := make([]BookmarkedIdeaDTO, 0, len(marks))
	for _, m := range marks {
		i, ok := byID[m.IdeaID]
		if !ok {
			continue
		}
		out = append(out, BookmarkedIdeaDTO{
			IdeaID:       i.IdeaID,
			Title:        i.Title,
			Industry:     i.Industry,
			Stage:        string(i.Stage),
			BookmarkedAt: m.CreatedAt,
		})
	}
	return out, nil
}
