// Package v1 provides the public HTTP handlers.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aurum/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat API
	e.POST("/v1/chat", h.Chat)
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages)
	e.GET("/v1/users/:user_id/sessions", h.ListUserSessions)

	// Gold purchase API
	e.POST("/v1/gold/buy", h.BuyGold)
	e.GET("/v1/gold/transactions", h.ListTransactions)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
