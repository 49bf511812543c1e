// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"aurum/internal/domain"
)

// Store defines the interface for data persistence.
type Store interface {
	// User operations
	GetOrCreateUser(ctx context.Context, userID string) (*domain.User, error)

	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context, userID string) ([]domain.Session, error)

	// Message operations
	AppendMessage(ctx context.Context, sessionID string, role domain.Role, content string) (*domain.Message, error)
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)

	// Transaction operations
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// Lifecycle
	Close() error
}
