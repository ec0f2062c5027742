package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/dto"
	"photovault/internal/presentation"
)

type PeopleHandler struct {
	people abstraction.PeopleFinder
}

func NewPeopleHandler(people abstraction.PeopleFinder) *PeopleHandler {
	return &PeopleHandler{
		people: people,
	}
}

// HandleSearch handles GET /people?name= requests.
func (h *PeopleHandler) HandleSearch(c echo.Context) error {
	images, err := h.people.Search(c.Request().Context(), ownerOf(c), c.QueryParam("name"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.PersonImagesResponse{Images: images})
}

// HandleFaces handles GET /faces requests.
func (h *PeopleHandler) HandleFaces(c echo.Context) error {
	faces, err := h.people.Faces(c.Request().Context(), ownerOf(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.FacesResponse{Faces: faces})
}

// HandleFaceCrop handles GET /faces/:faceId/crop requests, proxying the
// cropped face bytes straight through.
func (h *PeopleHandler) HandleFaceCrop(c echo.Context) error {
	crop, contentType, err := h.people.FaceCrop(c.Request().Context(), ownerOf(c),
		c.Param(presentation.FaceIDParam))
	if err != nil {
		return fail(c, err)
	}

	return c.Blob(http.StatusOK, contentType, crop)
}

type nameFaceRequest struct {
	Name string `json:"name"`
}

// HandleNameFace handles POST /faces/:faceId/name requests.
func (h *PeopleHandler) HandleNameFace(c echo.Context) error {
	var req nameFaceRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	err := h.people.NameFace(c.Request().Context(), ownerOf(c),
		c.Param(presentation.FaceIDParam), req.Name)
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
