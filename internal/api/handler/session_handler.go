package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/session"
)

// SessionHandler exposes the persisted current-user snapshot.
type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	User userResponse `json:"user"`
}

// Get handles GET /v1/session — returns the current-user snapshot persisted
// at login, or 404 when the caller has logged out (anonymous).
//
// @Summary      Get the current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.sessions.Current(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no active session")
		}
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: toUserResponse(*user)})
}

// Delete handles DELETE /v1/session — logout. Logging out twice is a no-op.
//
// @Summary      Log out
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
