package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/errs"
	"photovault/internal/presentation"
)

type DeleteHandler struct {
	albums abstraction.AlbumManager
}

func NewDeleteHandler(albums abstraction.AlbumManager) *DeleteHandler {
	return &DeleteHandler{
		albums: albums,
	}
}

// Handle handles DELETE /images/:id requests. The delete cascades through
// album memberships, metadata and the blob.
func (h *DeleteHandler) Handle(c echo.Context) error {
	imageID := c.Param(presentation.IDParam)
	if imageID == "" {
		return fail(c, errs.ErrNotFound)
	}

	if err := h.albums.DeleteImageCascade(c.Request().Context(), ownerOf(c), imageID); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
