package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/errs"
	"photovault/pkg/logger"
)

type UploadHandler struct {
	ingestor abstraction.Ingestor
}

func NewUploadHandler(ingestor abstraction.Ingestor) *UploadHandler {
	return &UploadHandler{
		ingestor: ingestor,
	}
}

// Handle handles POST /images requests. The image arrives as the multipart
// field "file".
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, errs.ErrNoPayload)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fail(c, errs.ErrNoPayload)
	}
	defer file.Close()

	result, err := h.ingestor.Ingest(c.Request().Context(), ownerOf(c), fileHeader.Filename, file)
	if err != nil {
		logger.Error("upload failed", "error", err)

		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
