package aggregation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	domainIdea "ideafund-backend/internal/domain/idea"
	domainInvestment "ideafund-backend/internal/domain/investment"
	domainProfile "ideafund-backend/internal/domain/profile"
	domainVote "ideafund-backend/internal/domain/vote"

	"gorm.io/gorm"
)

const recentTransactionLimit = 10

// Engine is the read side of the ledger: derived totals, vote scores and
// portfolio summaries computed from entity rows, never cached.
type Engine struct {
	ideaRepo       domainIdea.Repository
	investmentRepo domainInvestment.Repository
	voteRepo       domainVote.Repository
	profileRepo    domainProfile.Repository
}

func NewEngine(
	ideas domainIdea.Repository,
	investments domainInvestment.Repository,
	votes domainVote.Repository,
	profiles domainProfile.Repository,
) *Engine {
	return &Engine{
		ideaRepo:       ideas,
		investmentRepo: investments,
		voteRepo:       votes,
		profileRepo:    profiles,
	}
}

func (e *Engine) resolveIdea(ctx context.Context, ideaID string) (*domainIdea.Idea, error) {
	i, err := e.ideaRepo.GetByIdeaID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainIdea.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

// TotalRaised is the SUM of success investment amounts for one idea.
func (e *Engine) TotalRaised(ctx context.Context, ideaID string) (*TotalRaisedDTO, error) {
	i, err := e.resolveIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	total, err := e.investmentRepo.SumSuccessfulByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	return &TotalRaisedDTO{IdeaID: i.IdeaID, TotalRaised: total}, nil
}

func (e *Engine) VoteCounts(ctx context.Context, ideaID string) (*VoteCountsDTO, error) {
	i, err := e.resolveIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	counts, err := e.voteRepo.CountByIdeaID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	return &VoteCountsDTO{
		IdeaID:    i.IdeaID,
		Upvotes:   counts.Upvotes,
		Downvotes: counts.Downvotes,
		Score:     counts.Score(),
	}, nil
}

// PortfolioSummary aggregates an investor's successful investments and joins
// idea and founder details through batched lookups. Current value equals
// total investment: there is no valuation model, so gain is structurally 0
// and the percentage short-circuits to 0 when nothing is invested.
func (e *Engine) PortfolioSummary(ctx context.Context, investorID string) (*PortfolioDTO, error) {
	invs, err := e.investmentRepo.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, err
	}

	ideaIDSet := make(map[uint64]struct{}, len(invs))
	for _, inv := range invs {
		ideaIDSet[inv.IdeaID] = struct{}{}
	}
	ideaIDs := make([]uint64, 0, len(ideaIDSet))
	for id := range ideaIDSet {
		ideaIDs = append(ideaIDs, id)
	}

	ideas, err := e.ideaRepo.ListByIDs(ctx, ideaIDs)
	if err != nil {
		return nil, err
	}
	ideasByID := make(map[uint64]domainIdea.Idea, len(ideas))
	founderIDSet := make(map[string]struct{}, len(ideas))
	for _, i := range ideas {
		ideasByID[i.ID] = i
		founderIDSet[i.FounderID] = struct{}{}
	}
	founderIDs := make([]string, 0, len(founderIDSet))
	for id := range founderIDSet {
		founderIDs = append(founderIDs, id)
	}

	founders, err := e.profileRepo.ListByUserIDs(ctx, founderIDs)
	if err != nil {
		return nil, err
	}
	foundersByID := make(map[string]domainProfile.Profile, len(founders))
	for _, p := range founders {
		foundersByID[p.UserID] = p
	}

	var totalInvestment float64
	holdings := make([]HoldingDTO, 0, len(invs))
	for _, inv := range invs {
		if inv.PaymentStatus != domainInvestment.StatusSuccess {
			continue
		}
		totalInvestment += inv.Amount
		i := ideasByID[inv.IdeaID]
		holdings = append(holdings, HoldingDTO{
			IdeaID:   i.IdeaID,
			Title:    i.Title,
			Founder:  foundersByID[i.FounderID].FullName,
			Industry: i.Industry,
			Stage:    string(i.Stage),
			Amount:   inv.Amount,
		})
	}

	currentValue := totalInvestment
	gain := currentValue - totalInvestment
	gainPercentage := 0
	if totalInvestment > 0 {
		gainPercentage = int(math.Round(gain / totalInvestment * 100))
	}

	sorted := make([]domainInvestment.Investment, len(invs))
	copy(sorted, invs)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].CreatedAt.Equal(sorted[b].CreatedAt) {
			return sorted[a].ID > sorted[b].ID
		}
		return sorted[a].CreatedAt.After(sorted[b].CreatedAt)
	})
	if len(sorted) > recentTransactionLimit {
		sorted = sorted[:recentTransactionLimit]
	}

	transactions := make([]TransactionDTO, 0, len(sorted))
	for _, inv := range sorted {
		txType := "investment"
		if inv.PaymentStatus == domainInvestment.StatusWithdrawn {
			txType = "withdrawal"
		}
		title := ideasByID[inv.IdeaID].Title
		transactions = append(transactions, TransactionDTO{
			InvestmentID: inv.InvestmentID,
			Type:         txType,
			Description:  fmt.Sprintf("Investment in %q", title),
			Amount:       inv.Amount,
			Date:         inv.CreatedAt.UTC().Format("2006-01-02"),
		})
	}

	return &PortfolioDTO{
		TotalInvestment:    totalInvestment,
		CurrentValue:       currentValue,
		Gain:               gain,
		GainPercentage:     gainPercentage,
		Holdings:           holdings,
		RecentTransactions: transactions,
	}, nil
}
