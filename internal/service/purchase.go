package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aurum/internal/domain"
)

// Purchase validates, prices, and records one gold purchase. Validation
// runs once, through the policy engine; the pricing engine is the sole
// source of the rate and total.
func (s *Service) Purchase(ctx context.Context, req *domain.PurchaseRequest) (*domain.Transaction, error) {
	decision, err := s.policy.Evaluate(ctx, map[string]interface{}{
		"user_name":       req.UserName,
		"weight_in_grams": req.WeightInGrams.InexactFloat64(),
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate purchase policy: %w", err)
	}
	if !decision.Allow {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, decision.Reason)
	}

	quote, err := s.pricer.Price(req.WeightInGrams)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserName:      req.UserName,
		WeightGrams:   req.WeightInGrams,
		RatePerGram:   quote.Rate,
		TotalUSD:      quote.Total,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	return tx, nil
}
