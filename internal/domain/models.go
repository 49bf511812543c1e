// Package domain defines the core domain models for the chat and gold purchase service.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// User is the stable external identity all session ownership is keyed to.
// Created on first reference, never mutated.
type User struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is one conversation thread owned by exactly one user.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single turn in a session. Messages are append-only and
// ordered by timestamp ascending.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transaction is one immutable priced gold purchase. The ledger is keyed
// by a free-text name, not the user table.
type Transaction struct {
	TransactionID string          `json:"id"`
	UserName      string          `json:"user_name"`
	WeightGrams   decimal.Decimal `json:"weight_grams"`
	RatePerGram   decimal.Decimal `json:"rate_per_gram_usd"`
	TotalUSD      decimal.Decimal `json:"total_usd"`
	Timestamp     time.Time       `json:"timestamp"`
}

// titleRuneLimit is the cutoff applied to a first message before it becomes
// a session title. The stored title column allows 100 characters.
const titleRuneLimit = 75

// SessionTitle derives a session title from the first user message,
// truncating to 75 characters with an ellipsis marker if longer.
func SessionTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) <= titleRuneLimit {
		return firstMessage
	}
	return string(runes[:titleRuneLimit]) + "..."
}
