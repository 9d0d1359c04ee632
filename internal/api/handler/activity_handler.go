package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/socialpulse/feed-system/internal/core/ports"
)

// ActivityHandler exposes the per-post interaction audit trail.
type ActivityHandler struct {
	repo ports.ActivityRepository
}

func NewActivityHandler(repo ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// ListByPost handles GET /v1/posts/:id/activity (admin only).
//
// @Summary      List recorded activity for a post
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Post ID"
// @Param        limit  query     int     false  "Max events to return (default 50)"
// @Success      200    {object}  listActivityResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/posts/{id}/activity [get]
func (h *ActivityHandler) ListByPost(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.repo.ListByPost(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}

	data := make([]activityEventResponse, 0, len(events))
	for _, e := range events {
		data = append(data, activityEventResponse{
			Kind:      string(e.Kind),
			PostID:    e.PostID,
			ActorID:   e.ActorID,
			Timestamp: e.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, listActivityResponse{Data: data})
}
