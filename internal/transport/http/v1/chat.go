package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"aurum/internal/domain"
)

// Chat executes one conversational turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and message are required."})
	}
	if req.UserID == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and message are required."})
	}

	result, err := h.service.Chat(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Invalid session_id."})
		case errors.Is(err, domain.ErrInvalidArgument):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and message are required."})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "AI service failed: " + err.Error()})
		}
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{
		SessionID:   result.SessionID,
		UserMessage: result.UserMessage,
		AIResponse:  result.AIResponse,
	})
}

// GetSessionMessages retrieves the trailing message window for a session.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")
	limit := 50
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil {
			limit = val
		}
	}

	ctx := c.Request().Context()

	messages, err := h.service.SessionMessages(ctx, sessionID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
		"has_more": len(messages) == limit, // Approximate
	})
}

// ListUserSessions lists a user's sessions.
// GET /v1/users/:user_id/sessions
func (h *Handler) ListUserSessions(c echo.Context) error {
	userID := c.Param("user_id")

	sessions, err := h.service.UserSessions(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}
