package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/errs"
	"photovault/internal/presentation"
)

type ShareHandler struct {
	sharer abstraction.Sharer
}

func NewShareHandler(sharer abstraction.Sharer) *ShareHandler {
	return &ShareHandler{
		sharer: sharer,
	}
}

// Handle handles GET /share/:albumId requests. No session is required.
func (h *ShareHandler) Handle(c echo.Context) error {
	albumID := c.Param(presentation.AlbumIDParam)
	if albumID == "" {
		return fail(c, errs.ErrNotFound)
	}

	shared, err := h.sharer.Get(c.Request().Context(), albumID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, shared)
}
