package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/vote"

	"github.com/labstack/echo/v4"
)

type VoteHandler struct{ uc *vote.Usecase }

func NewVoteHandler(uc *vote.Usecase) *VoteHandler { return &VoteHandler{uc: uc} }

type castVoteReq struct {
	Value string `json:"value" validate:"required,oneof=up down"`
}

func (h *VoteHandler) CastVote(c echo.Context) error {
	var req castVoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Cast(c.Request().Context(), vote.CastInput{
		IdeaID: c.Param("idea_id"),
		UserID: middleware.UserID(c),
		Value:  req.Value,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
