// Package service implements the chat orchestration and purchase flows.
package service

import (
	"go.uber.org/zap"

	"aurum/internal/adapter/llm"
	"aurum/internal/config"
	"aurum/internal/pricing"
	store "aurum/internal/repository"
	"aurum/policy"
)

type Service struct {
	store  store.Store
	gen    llm.Generator
	pricer *pricing.Engine
	policy *policy.Engine
	config *config.Config
	log    *zap.Logger
}

func New(st store.Store, gen llm.Generator, pricer *pricing.Engine, policyEngine *policy.Engine, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		store:  st,
		gen:    gen,
		pricer: pricer,
		policy: policyEngine,
		config: cfg,
		log:    logger,
	}
}
