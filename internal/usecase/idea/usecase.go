package idea

import (
	"context"
	"errors"
	"time"

	domainIdea "ideafund-backend/internal/domain/idea"
	domainInvestment "ideafund-backend/internal/domain/investment"
	domainProfile "ideafund-backend/internal/domain/profile"
	"ideafund-backend/internal/domain/uow"
	domainVote "ideafund-backend/internal/domain/vote"
	"ideafund-backend/pkg/id"

	"gorm.io/gorm"
)

var validStages = map[domainIdea.Stage]bool{
	domainIdea.StageIdea:        true,
	domainIdea.StageMVP:         true,
	domainIdea.StageScaling:     true,
	domainIdea.StageEstablished: true,
}

type Usecase struct {
	ideaRepo       domainIdea.Repository
	investmentRepo domainInvestment.Repository
	voteRepo       domainVote.Repository
	profileRepo    domainProfile.Repository
	uow            uow.UnitOfWork
}

func NewUsecase(
	ideas domainIdea.Repository,
	investments domainInvestment.Repository,
	votes domainVote.Repository,
	profiles domainProfile.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{
		ideaRepo:       ideas,
		investmentRepo: investments,
		voteRepo:       votes,
		profileRepo:    profiles,
		uow:            tx,
	}
}

// Create registers a new idea in review status. Only founders may post.
func (u *Usecase) Create(ctx context.Context, in CreateIdeaInput) (*IdeaDTO, error) {
	if in.Title == "" || in.FundingGoal < 0 {
		return nil, domainIdea.ErrInvalidInput
	}
	stage := domainIdea.Stage(in.Stage)
	if in.Stage == "" {
		stage = domainIdea.StageIdea
	} else if !validStages[stage] {
		return nil, domainIdea.ErrInvalidInput
	}

	p, err := u.profileRepo.GetByUserID(ctx, in.FounderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProfile.ErrNotFound
		}
		return nil, err
	}
	if p.Role != domainProfile.RoleFounder {
		return nil, domainProfile.ErrRoleMismatch
	}

	i := &domainIdea.Idea{
		IdeaID:          id.NewID32(),
		FounderID:       in.FounderID,
		Title:           in.Title,
		Description:     in.Description,
		Industry:        in.Industry,
		Stage:           stage,
		FundingGoal:     in.FundingGoal,
		Status:          domainIdea.StatusReview,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.ideaRepo.Create(ctx, i); err != nil {
		return nil, err
	}
	return &IdeaDTO{
		IdeaID:      i.IdeaID,
		FounderID:   i.FounderID,
		Title:       i.Title,
		Description: i.Description,
		Industry:    i.Industry,
		Stage:       string(i.Stage),
		FundingGoal: i.FundingGoal,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
	}, nil
}

// Publish moves review -> live, founder-owned.
func (u *Usecase) Publish(ctx context.Context, ideaID, founderID string) (*IdeaDTO, error) {
	return u.transition(ctx, ideaID, founderID, domainIdea.StatusReview, domainIdea.StatusLive)
}

// Close moves live -> closed, founder-owned. Closed ideas reject investments.
func (u *Usecase) Close(ctx context.Context, ideaID, founderID string) (*IdeaDTO, error) {
	return u.transition(ctx, ideaID, founderID, domainIdea.StatusLive, domainIdea.StatusClosed)
}

func (u *Usecase) transition(ctx context.Context, ideaID, founderID string, from, to domainIdea.Status) (*IdeaDTO, error) {
	if u.uow == nil {
		return nil, domainIdea.ErrInvalidTransition
	}
	var dto *IdeaDTO
	err := u.uow.WithinIdeaTx(ctx, ideaID, func(r uow.Repos, i *domainIdea.Idea) error {
		if i.FounderID != founderID {
			return domainIdea.ErrNotOwner
		}
		if i.Status != from {
			return domainIdea.ErrInvalidTransition
		}
		i.Status = to
		i.StatusUpdatedAt = time.Now().UTC()
		if err := r.Ideas.Save(ctx, i); err != nil {
			return err
		}
		dto = &IdeaDTO{
			IdeaID:      i.IdeaID,
			FounderID:   i.FounderID,
			Title:       i.Title,
			Description: i.Description,
			Industry:    i.Industry,
			Stage:       string(i.Stage),
			FundingGoal: i.FundingGoal,
			Status:      string(i.Status),
			CreatedAt:   i.CreatedAt,
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

// Get returns one idea with its derived total and vote counts.
func (u *Usecase) Get(ctx context.Context, ideaID string) (*IdeaDTO, error) {
	i, err := u.ideaRepo.GetByIdeaID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainIdea.ErrNotFound
		}
		return nil, err
	}
	total, err := u.investmentRepo.SumSuccessfulByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	counts, err := u.voteRepo.CountByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*i, total, counts)
	return &dto, nil
}

// ListLive returns the public feed with one batched SUM and one batched
// vote count for all ideas instead of a query per row.
func (u *Usecase) ListLive(ctx context.Context) ([]IdeaDTO, error) {
	ideas, err := u.ideaRepo.ListLive(ctx)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, ideas)
}

func (u *Usecase) ListByFounder(ctx context.Context, founderID string) ([]IdeaDTO, error) {
	ideas, err := u.ideaRepo.ListByFounderID(ctx, founderID)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, ideas)
}

func (u *Usecase) decorate(ctx context.Context, ideas []domainIdea.Idea) ([]IdeaDTO, error) {
	if len(ideas) == 0 {
		return []IdeaDTO{}, nil
	}
	ids := make([]uint64, 0, len(ideas))
	for _, i := range ideas {
		ids = append(ids, i.ID)
	}
	totals, err := u.investmentRepo.SumSuccessfulByIdeaIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	counts, err := u.voteRepo.CountByIdeaIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]IdeaDTO, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, toDTO(i, totals[i.ID], counts[i.ID]))
	}
	return out, nil
}

func toDTO(i domainIdea.Idea, total float64, counts domainVote.Counts) IdeaDTO {
	return IdeaDTO{
		IdeaID:      i.IdeaID,
		FounderID:   i.FounderID,
		Title:       i.Title,
		Description: i.Description,
		Industry:    i.Industry,
		Stage:       string(i.Stage),
		FundingGoal: i.FundingGoal,
		Status:      string(i.Status),
		TotalRaised: total,
		Upvotes:     counts.Upvotes,
		Downvotes:   counts.Downvotes,
		Score:       counts.Score(),
		CreatedAt:   i.CreatedAt,
	}
}
