// Package policy validates purchase input through an OPA rego policy.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.purchase.decision"),
		rego.Module("purchase.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Decision is the tagged outcome of a validation check.
type Decision struct {
	Allow  bool
	Reason string
}

// Evaluate checks the purchase policy. Input is a map with keys
// user_name and weight_in_grams.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (Decision, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default, so an empty result means the
		// input never reached it.
		return Decision{}, fmt.Errorf("policy produced no decision")
	}

	obj, ok := results[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return Decision{}, fmt.Errorf("unexpected policy result type %T", results[0].Expressions[0].Value)
	}

	var decision Decision
	if v, ok := obj["allow"].(bool); ok {
		decision.Allow = v
	}
	if v, ok := obj["reason"].(string); ok {
		decision.Reason = v
	}
	return decision, nil
}

// PurchasePolicy is the default purchase validation policy.
const PurchasePolicy = `
package purchase

import rego.v1

default decision := {"allow": true, "reason": ""}

decision := {"allow": false, "reason": "user_name is required"} if {
	input.user_name == ""
}

decision := {"allow": false, "reason": "weight_in_grams must be a positive number"} if {
	input.user_name != ""
	input.weight_in_grams <= 0
}
`
