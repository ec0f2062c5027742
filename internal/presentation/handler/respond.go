package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/domain/errs"
	"photovault/internal/presentation"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNoPayload),
		errors.Is(err, errs.ErrEmptyAlbumName),
		errors.Is(err, errs.ErrForeignImageReference):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c echo.Context, err error) error {
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	return c.NoContent(statusOf(err))
}

func ownerOf(c echo.Context) string {
	owner, _ := c.Get(presentation.UIDKey).(string)

	return owner
}
