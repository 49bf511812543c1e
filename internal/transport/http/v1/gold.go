package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"aurum/internal/domain"
)

// purchaseResponse is the serialized transaction plus a status marker.
type purchaseResponse struct {
	*domain.Transaction
	Status string `json:"status"`
}

// BuyGold prices and records a gold purchase.
// POST /v1/gold/buy
func (h *Handler) BuyGold(c echo.Context) error {
	var req domain.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_name and weight_in_grams must be a positive number."})
	}

	tx, err := h.service.Purchase(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_name and weight_in_grams must be a positive number."})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, purchaseResponse{
		Transaction: tx,
		Status:      "Purchase successful",
	})
}

// ListTransactions lists recorded purchases, most recent first.
// GET /v1/gold/transactions
func (h *Handler) ListTransactions(c echo.Context) error {
	transactions, err := h.service.Transactions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": transactions,
	})
}
