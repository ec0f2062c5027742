package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
)

type FeedHandler struct {
	feeder abstraction.Feeder
}

func NewFeedHandler(feeder abstraction.Feeder) *FeedHandler {
	return &FeedHandler{
		feeder: feeder,
	}
}

// Handle handles GET /images?cursor= requests.
func (h *FeedHandler) Handle(c echo.Context) error {
	page, err := h.feeder.List(c.Request().Context(), ownerOf(c), c.QueryParam("cursor"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// HandleWatch handles GET /images/watch requests, streaming feed snapshots as
// server-sent events: one immediately, then one per library change, until the
// client disconnects.
func (h *FeedHandler) HandleWatch(c echo.Context) error {
	pages, err := h.feeder.Watch(c.Request().Context(), ownerOf(c))
	if err != nil {
		return fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	for page := range pages {
		data, err := json.Marshal(page)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
			return err
		}
		c.Response().Flush()
	}

	return nil
}
