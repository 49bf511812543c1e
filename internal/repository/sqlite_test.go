package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aurum/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestGetOrCreateUserIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	first, err := store.GetOrCreateUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}
	second, err := store.GetOrCreateUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetOrCreateUser failed on second call: %v", err)
	}

	if first.UserID != second.UserID {
		t.Fatalf("expected same user, got %q and %q", first.UserID, second.UserID)
	}
	if !first.CreatedAt.Equal(second.CreatedAt) {
		t.Fatalf("second call changed created_at: %v vs %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestGetOrCreateUserEmptyID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	_, err := store.GetOrCreateUser(ctx, "")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	if _, err := store.GetOrCreateUser(ctx, "u1"); err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}

	session := &domain.Session{
		SessionID: "s1",
		UserID:    "u1",
		Title:     "Hello",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil || got.UserID != "u1" || got.Title != "Hello" {
		t.Fatalf("unexpected session: %+v", got)
	}

	missing, err := store.GetSession(ctx, "nope")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown session, got %+v", missing)
	}
}

func TestListSessionsByUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	for _, userID := range []string{"u1", "u2"} {
		if _, err := store.GetOrCreateUser(ctx, userID); err != nil {
			t.Fatalf("GetOrCreateUser failed: %v", err)
		}
	}
	for i, owner := range []string{"u1", "u1", "u2"} {
		session := &domain.Session{
			SessionID: fmt.Sprintf("s%d", i+1),
			UserID:    owner,
			Title:     "chat",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	sessions, err := store.ListSessions(ctx, "u1")
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions for u1, got %d", len(sessions))
	}
	if sessions[0].SessionID != "s2" {
		t.Fatalf("expected most recent session first, got %+v", sessions)
	}
}

func TestAppendMessageAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	createSessionForTest(t, store, "s1", "u1")

	msg, err := store.AppendMessage(ctx, "s1", domain.RoleUser, "hello")
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if msg.MessageID == "" || msg.Timestamp.IsZero() {
		t.Fatalf("expected store-assigned id and timestamp, got %+v", msg)
	}

	_, err = store.AppendMessage(ctx, "s1", domain.RoleUser, "")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty content, got %v", err)
	}
}

func TestRecentMessagesTrailingWindow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	createSessionForTest(t, store, "s1", "u1")

	for i := 0; i < 20; i++ {
		if _, err := store.AppendMessage(ctx, "s1", domain.RoleUser, fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
	}

	window, err := store.RecentMessages(ctx, "s1", 15)
	if err != nil {
		t.Fatalf("RecentMessages failed: %v", err)
	}
	if len(window) != 15 {
		t.Fatalf("expected window of 15, got %d", len(window))
	}
	// The window trails: oldest surviving message is #5, newest is #19.
	if window[0].Content != "message 5" || window[14].Content != "message 19" {
		t.Fatalf("unexpected window bounds: %q .. %q", window[0].Content, window[14].Content)
	}
	for i := 1; i < len(window); i++ {
		if window[i].Timestamp.Before(window[i-1].Timestamp) {
			t.Fatalf("window not in chronological order at %d", i)
		}
	}

	// Re-querying without new appends yields the same sequence.
	again, err := store.RecentMessages(ctx, "s1", 15)
	if err != nil {
		t.Fatalf("RecentMessages failed: %v", err)
	}
	for i := range window {
		if again[i].MessageID != window[i].MessageID {
			t.Fatalf("window not restartable at %d", i)
		}
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	tx := &domain.Transaction{
		TransactionID: "t1",
		UserName:      "Alice",
		WeightGrams:   decimal.RequireFromString("2.5"),
		RatePerGram:   decimal.RequireFromString("75.50"),
		TotalUSD:      decimal.RequireFromString("188.75"),
		Timestamp:     time.Now().UTC(),
	}
	if err := store.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	got, err := store.GetTransaction(ctx, "t1")
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected transaction, got nil")
	}
	if !got.TotalUSD.Equal(got.RatePerGram.Mul(got.WeightGrams)) {
		t.Fatalf("total %s does not equal rate*weight", got.TotalUSD)
	}
	if got.TotalUSD.String() != "188.75" || got.RatePerGram.String() != "75.50" {
		t.Fatalf("decimals did not round-trip: %+v", got)
	}

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
}

func createSessionForTest(t *testing.T, store *SQLiteStore, sessionID, userID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.GetOrCreateUser(ctx, userID); err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}
	session := &domain.Session{
		SessionID: sessionID,
		UserID:    userID,
		Title:     "test chat",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
}
