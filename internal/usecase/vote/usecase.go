package vote

import (
	"context"
	"errors"

	domainIdea "ideafund-backend/internal/domain/idea"
	"ideafund-backend/internal/domain/uow"
	domainVote "ideafund-backend/internal/domain/vote"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Cast applies the toggle state machine for one (idea, user) pair:
// no row -> insert; same value -> retract; opposite value -> switch in place.
// Counts are recomputed inside the same transaction.
func (u *Usecase) Cast(ctx context.Context, in CastInput) (*VoteDTO, error) {
	if u.uow == nil {
		return nil, domainVote.ErrInvalidValue
	}
	value := domainVote.Value(in.Value)
	if value != domainVote.ValueUp && value != domainVote.ValueDown {
		return nil, domainVote.ErrInvalidValue
	}

	var dto *VoteDTO
	err := u.uow.WithinIdeaTx(ctx, in.IdeaID, func(r uow.Repos, i *domainIdea.Idea) error {
		userVote := string(value)

		existing, err := r.Votes.GetByIdeaAndUser(ctx, i.ID, in.UserID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.Votes.Upsert(ctx, &domainVote.Vote{
				IdeaID: i.ID,
				UserID: in.UserID,
				Value:  value,
			}); err != nil {
				return err
			}
		case err != nil:
			return err
		case existing.Value == value:
			// toggle-off
			if err := r.Votes.DeleteByIdeaAndUser(ctx, i.ID, in.UserID); err != nil {
				return err
			}
			userVote = ""
		default:
			existing.Value = value
			if err := r.Votes.Upsert(ctx, existing); err != nil {
				return err
			}
		}

		counts, err := r.Votes.CountByIdeaID(ctx, i.ID)
		if err != nil {
			return err
		}
		dto = &VoteDTO{
			IdeaID:    i.IdeaID,
			UserVote:  userVote,
			Upvotes:   counts.Upvotes,
			Downvotes: counts.Downvotes,
			Score:     counts.Score(),
		}
		return nil
	})
	switch {
	case err == nil:
		return dto, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domainIdea.ErrNotFound
	default:
		return nil, err
	}
}
