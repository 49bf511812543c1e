// Package pricing computes gold purchase totals from a fixed per-gram rate.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"aurum/internal/domain"
)

// Quote is the server-computed price for a purchase.
type Quote struct {
	Rate  decimal.Decimal
	Total decimal.Decimal
}

// Engine prices purchases at a fixed rate. The rate is injected once at
// construction; there is no other source of pricing.
type Engine struct {
	rate decimal.Decimal
}

// NewEngine creates a pricing engine with the given USD-per-gram rate.
func NewEngine(ratePerGram decimal.Decimal) *Engine {
	return &Engine{rate: ratePerGram}
}

// Rate returns the configured USD-per-gram rate.
func (e *Engine) Rate() decimal.Decimal {
	return e.rate
}

// Price computes the total for a weight in grams. The multiply runs at
// full decimal precision and the total is rounded to 2 fractional digits.
func (e *Engine) Price(weightGrams decimal.Decimal) (Quote, error) {
	if weightGrams.Sign() <= 0 {
		return Quote{}, fmt.Errorf("%w: weight_in_grams must be a positive number", domain.ErrInvalidArgument)
	}
	return Quote{
		Rate:  e.rate,
		Total: e.rate.Mul(weightGrams).Round(2),
	}, nil
}
