package domain

import "github.com/shopspring/decimal"

// ChatRequest is the input for one conversational turn.
type ChatRequest struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResult is the outcome of one conversational turn. Degraded is set
// when the generation call failed and AIResponse carries the error detail
// instead of a real reply; the turn itself still succeeds.
type ChatResult struct {
	SessionID     string
	UserMessage   string
	AIResponse    string
	Degraded      bool
	FailureDetail string
}

// ChatResponse is the wire shape of a successful chat turn.
type ChatResponse struct {
	SessionID   string `json:"session_id"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
}

// PurchaseRequest is the input for a gold purchase. WeightInGrams accepts
// both a JSON number and a numeric string. Any client-supplied rate or
// total fields are ignored; the server is the sole source of pricing.
type PurchaseRequest struct {
	UserName      string          `json:"user_name"`
	WeightInGrams decimal.Decimal `json:"weight_in_grams"`
}
