package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/idea"

	"github.com/labstack/echo/v4"
)

type IdeaHandler struct{ uc *idea.Usecase }

func NewIdeaHandler(uc *idea.Usecase) *IdeaHandler { return &IdeaHandler{uc: uc} }

type createIdeaReq struct {
	Title       string  `json:"title"        validate:"required"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"     validate:"required"`
	Stage       string  `json:"stage"        validate:"omitempty,oneof=idea mvp scaling established"`
	FundingGoal float64 `json:"funding_goal" validate:"gte=0,dec2"`
}

func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	var req createIdeaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), idea.CreateIdeaInput{
		FounderID:   middleware.UserID(c),
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		Stage:       req.Stage,
		FundingGoal: req.FundingGoal,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *IdeaHandler) GetIdea(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("idea_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListIdeas returns the live feed, or the caller's own ideas with ?mine=true.
func (h *IdeaHandler) ListIdeas(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		dtos []idea.IdeaDTO
		err  error
	)
	if c.QueryParam("mine") == "true" {
		dtos, err = h.uc.ListByFounder(ctx, middleware.UserID(c))
	} else {
		dtos, err = h.uc.ListLive(ctx)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *IdeaHandler) PublishIdea(c echo.Context) error {
	dto, err := h.uc.Publish(c.Request().Context(), c.Param("idea_id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *IdeaHandler) CloseIdea(c echo.Context) error {
	dto, err := h.uc.Close(c.Request().Context(), c.Param("idea_id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
