package http

import (
	"errors"
	"net/http"

	domainIdea "ideafund-backend/internal/domain/idea"
	domainInvestment "ideafund-backend/internal/domain/investment"
	domainProfile "ideafund-backend/internal/domain/profile"
	domainVote "ideafund-backend/internal/domain/vote"
	ucNotification "ideafund-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// statusForError maps domain sentinels onto the HTTP taxonomy. Anything
// unrecognized at this point is a store failure and retryable.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainInvestment.ErrInvalidAmount),
		errors.Is(err, domainVote.ErrInvalidValue),
		errors.Is(err, domainIdea.ErrInvalidInput),
		errors.Is(err, domainProfile.ErrInvalidRole),
		errors.Is(err, ucNotification.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, domainInvestment.ErrNotOwner),
		errors.Is(err, domainIdea.ErrNotOwner),
		errors.Is(err, domainProfile.ErrRoleMismatch):
		return http.StatusForbidden
	case errors.Is(err, domainIdea.ErrNotFound),
		errors.Is(err, domainInvestment.ErrNotFound),
		errors.Is(err, domainProfile.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainIdea.ErrClosed),
		errors.Is(err, domainIdea.ErrInvalidTransition),
		errors.Is(err, domainInvestment.ErrInvalidTransition),
		errors.Is(err, domainProfile.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}

func respondError(c echo.Context, err error) error {
	code := statusForError(err)
	msg := err.Error()
	if code == http.StatusServiceUnavailable {
		msg = "store unavailable"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
