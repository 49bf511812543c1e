package v1

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"aurum/internal/adapter/llm"
	"aurum/internal/config"
	"aurum/internal/pricing"
	store "aurum/internal/repository"
	"aurum/internal/service"
	"aurum/policy"
	"aurum/tests/helpers"
)

// failingGenerator simulates a provider outage.
type failingGenerator struct{ detail string }

func (g *failingGenerator) Generate(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	return "", errors.New(g.detail)
}

func newTestHandler(t *testing.T) (*Handler, *store.SQLiteStore) {
	return newTestHandlerWithGenerator(t, llm.NewMockClient())
}

func newTestHandlerWithGenerator(t *testing.T, gen llm.Generator) (*Handler, *store.SQLiteStore) {
	t.Helper()
	db := helpers.NewTestSQLiteStore(t)

	engine, err := policy.NewEngine(context.Background(), policy.PurchasePolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	cfg := &config.Config{
		HistoryLimit:    15,
		SystemPrompt:    "You are a helpful history assistant.",
		GoldRatePerGram: decimal.RequireFromString("75.50"),
	}
	pricer := pricing.NewEngine(cfg.GoldRatePerGram)

	svc := service.New(db, gen, pricer, engine, cfg, zap.NewNop())
	return NewHandler(svc), db
}
