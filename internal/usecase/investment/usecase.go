package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainIdea "ideafund-backend/internal/domain/idea"
	domainInvestment "ideafund-backend/internal/domain/investment"
	domainNotification "ideafund-backend/internal/domain/notification"
	domainProfile "ideafund-backend/internal/domain/profile"
	"ideafund-backend/internal/domain/uow"
	"ideafund-backend/pkg/id"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	profileRepo domainProfile.Repository
	uow         uow.UnitOfWork
}

// NewUsecase: profiles for the role check, UoW for the ledger transactions.
func NewUsecase(profiles domainProfile.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{profileRepo: profiles, uow: tx}
}

// Invest records a successful investment against a live or in-review idea.
// The simplified payment model captures directly into success; pending/failed
// exist for a later gateway step.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if u.uow == nil {
		return nil, domainInvestment.ErrInvalidTransition
	}
	if in.Amount <= 0 {
		return nil, domainInvestment.ErrInvalidAmount
	}

	p, err := u.profileRepo.GetByUserID(ctx, in.InvestorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProfile.ErrNotFound
		}
		return nil, err
	}
	if p.Role != domainProfile.RoleInvestor {
		return nil, domainProfile.ErrRoleMismatch
	}

	var dto *InvestmentDTO
	err = u.uow.WithinIdeaTx(ctx, in.IdeaID, func(r uow.Repos, i *domainIdea.Idea) error {
		if i.Status == domainIdea.StatusClosed {
			return domainIdea.ErrClosed
		}

		inv := &domainInvestment.Investment{
			InvestmentID:    id.NewID32(),
			IdeaID:          i.ID,
			InvestorID:      in.InvestorID,
			Amount:          in.Amount,
			PaymentStatus:   domainInvestment.StatusSuccess,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		total, err := r.Investments.SumSuccessfulByIdeaID(ctx, i.ID)
		if err != nil {
			return err
		}

		// The investment write is authoritative; a lost founder notification
		// is logged, never retried or duplicated.
		n := &domainNotification.Notification{
			NotificationID: id.NewID32(),
			UserID:         i.FounderID,
			Message:        fmt.Sprintf("New investment in %q", i.Title),
		}
		if err := r.Notifications.Create(ctx, n); err != nil {
			log.Errorf("notify founder %s about investment %s: %v", i.FounderID, inv.InvestmentID, err)
		}

		dto = &InvestmentDTO{
			InvestmentID:  inv.InvestmentID,
			IdeaID:        i.IdeaID,
			InvestorID:    inv.InvestorID,
			Amount:        inv.Amount,
			PaymentStatus: string(inv.PaymentStatus),
			TotalRaised:   total,
			CreatedAt:     inv.CreatedAt,
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

// Withdraw transitions the caller's own investment success -> withdrawn.
// The row is kept for audit history; totals exclude it from then on.
func (u *Usecase) Withdraw(ctx context.Context, investmentID, requestingInvestorID string) (*WithdrawDTO, error) {
	if u.uow == nil {
		return nil, domainInvestment.ErrInvalidTransition
	}

	var dto *WithdrawDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByInvestmentIDForUpdate(ctx, investmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainInvestment.ErrNotFound
			}
			return err
		}
		// Ownership check before any state guard: never reveal another
		// investor's investment state.
		if inv.InvestorID != requestingInvestorID {
			return domainInvestment.ErrNotOwner
		}
		if !inv.PaymentStatus.CanTransitionTo(domainInvestment.StatusWithdrawn) {
			return domainInvestment.ErrInvalidTransition
		}

		inv.PaymentStatus = domainInvestment.StatusWithdrawn
		inv.StatusUpdatedAt = time.Now().UTC()
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}

		total, err := r.Investments.SumSuccessfulByIdeaID(ctx, inv.IdeaID)
		if err != nil {
			return err
		}

		ideaPublicID := ""
		if ideas, err := r.Ideas.ListByIDs(ctx, []uint64{inv.IdeaID}); err == nil && len(ideas) == 1 {
			ideaPublicID = ideas[0].IdeaID
		}

		dto = &WithdrawDTO{
			InvestmentID:  inv.InvestmentID,
			IdeaID:        ideaPublicID,
			PaymentStatus: string(inv.PaymentStatus),
			TotalRaised:   total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MarkFailed transitions pending -> failed, the hook for a payment-capture
// step that never confirmed.
func (u *Usecase) MarkFailed(ctx context.Context, investmentID string) error {
	if u.uow == nil {
		return domainInvestment.ErrInvalidTransition
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByInvestmentIDForUpdate(ctx, investmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainInvestment.ErrNotFound
			}
			return err
		}
		if !inv.PaymentStatus.CanTransitionTo(domainInvestment.StatusFailed) {
			return domainInvestment.ErrInvalidTransition
		}
		inv.PaymentStatus = domainInvestment.StatusFailed
		inv.StatusUpdatedAt = time.Now().UTC()
		return r.Investments.Save(ctx, inv)
	})
}
