package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *notification.Usecase }

func NewNotificationHandler(uc *notification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	dto, err := h.uc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type markReadReq struct {
	NotificationIDs []string `json:"notification_ids" validate:"required,min=1,dive,hex32"`
}

func (h *NotificationHandler) MarkNotificationsRead(c echo.Context) error {
	var req markReadReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.MarkRead(c.Request().Context(), middleware.UserID(c), req.NotificationIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
