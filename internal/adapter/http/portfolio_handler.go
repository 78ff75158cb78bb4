package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/aggregation"

	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct{ engine *aggregation.Engine }

func NewPortfolioHandler(e *aggregation.Engine) *PortfolioHandler {
	return &PortfolioHandler{engine: e}
}

func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	dto, err := h.engine.PortfolioSummary(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PortfolioHandler) GetIdeaStats(c echo.Context) error {
	ctx := c.Request().Context()
	ideaID := c.Param("idea_id")

	raised, err := h.engine.TotalRaised(ctx, ideaID)
	if err != nil {
		return respondError(c, err)
	}
	votes, err := h.engine.VoteCounts(ctx, ideaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"idea_id":      raised.IdeaID,
		"total_raised": raised.TotalRaised,
		"upvotes":      votes.Upvotes,
		"downvotes":    votes.Downvotes,
		"score":        votes.Score,
	})
}
