package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct{ uc *profile.Usecase }

func NewProfileHandler(uc *profile.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type registerProfileReq struct {
	FullName    string `json:"full_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	CompanyName string `json:"company_name"`
	Bio         string `json:"bio"`
	Role        string `json:"role"         validate:"required,oneof=founder investor reviewer"`
}

func (h *ProfileHandler) RegisterProfile(c echo.Context) error {
	var req registerProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), profile.RegisterInput{
		UserID:      middleware.UserID(c),
		FullName:    req.FullName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Bio:         req.Bio,
		Role:        req.Role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
