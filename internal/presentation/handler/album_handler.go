package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/errs"
	"photovault/internal/presentation"
)

type AlbumHandler struct {
	albums abstraction.AlbumManager
}

func NewAlbumHandler(albums abstraction.AlbumManager) *AlbumHandler {
	return &AlbumHandler{
		albums: albums,
	}
}

type createAlbumRequest struct {
	Name     string   `json:"name"`
	ImageIDs []string `json:"image_ids"`
	Public   bool     `json:"public"`
}

type autoAlbumRequest struct {
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

// HandleCreate handles POST /albums requests.
func (h *AlbumHandler) HandleCreate(c echo.Context) error {
	var req createAlbumRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.ErrEmptyAlbumName)
	}

	id, err := h.albums.Create(c.Request().Context(), ownerOf(c), req.Name, req.ImageIDs, req.Public)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

// HandleAutoCreate handles POST /albums/auto requests: the album name doubles
// as the semantic query.
func (h *AlbumHandler) HandleAutoCreate(c echo.Context) error {
	var req autoAlbumRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.ErrEmptyAlbumName)
	}

	result, err := h.albums.AutoCreate(c.Request().Context(), ownerOf(c), req.Name, req.Public)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// HandleList handles GET /albums?scope=private|public requests.
func (h *AlbumHandler) HandleList(c echo.Context) error {
	summaries, err := h.albums.List(c.Request().Context(), ownerOf(c), c.QueryParam("scope"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// HandleGet handles GET /albums/:id requests.
func (h *AlbumHandler) HandleGet(c echo.Context) error {
	detail, err := h.albums.Get(c.Request().Context(), ownerOf(c),
		c.Param(presentation.IDParam), isPublic(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

// HandleAddImage handles PUT /albums/:id/images/:imageId requests.
func (h *AlbumHandler) HandleAddImage(c echo.Context) error {
	err := h.albums.AddImage(c.Request().Context(), ownerOf(c),
		c.Param(presentation.IDParam), c.Param(presentation.ImageIDParam), isPublic(c))
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleRemoveImage handles DELETE /albums/:id/images/:imageId requests.
func (h *AlbumHandler) HandleRemoveImage(c echo.Context) error {
	err := h.albums.RemoveImage(c.Request().Context(), ownerOf(c),
		c.Param(presentation.IDParam), c.Param(presentation.ImageIDParam), isPublic(c))
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleDelete handles DELETE /albums/:id requests.
func (h *AlbumHandler) HandleDelete(c echo.Context) error {
	err := h.albums.Delete(c.Request().Context(), ownerOf(c),
		c.Param(presentation.IDParam), isPublic(c))
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func isPublic(c echo.Context) bool {
	return c.QueryParam("public") == "true"
}
