package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		IdeaID:     c.Param("idea_id"),
		InvestorID: middleware.UserID(c),
		Amount:     req.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) WithdrawInvestment(c echo.Context) error {
	dto, err := h.uc.Withdraw(c.Request().Context(), c.Param("investment_id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
