package http

import (
	"net/http"

	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/usecase/bookmark"

	"github.com/labstack/echo/v4"
)

type BookmarkHandler struct{ uc *bookmark.Usecase }

func NewBookmarkHandler(uc *bookmark.Usecase) *BookmarkHandler { return &BookmarkHandler{uc: uc} }

func (h *BookmarkHandler) AddBookmark(c echo.Context) error {
	dto, err := h.uc.Add(c.Request().Context(), c.Param("idea_id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BookmarkHandler) RemoveBookmark(c echo.Context) error {
	dto, err := h.uc.Remove(c.Request().Context(), c.Param("idea_id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
