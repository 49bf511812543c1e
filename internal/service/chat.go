package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aurum/internal/adapter/llm"
	"aurum/internal/domain"
)

// Chat executes one conversational turn: resolve the identity and session,
// append the user's message, forward the trailing history window to the
// generation client, and return the reply.
//
// The user's message is durable before the external call is made. A
// generation failure never fails the turn: the result is tagged Degraded
// and AIResponse carries the error detail instead of a real reply.
func (s *Service) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResult, error) {
	if req.UserID == "" || req.Message == "" {
		return nil, fmt.Errorf("%w: user_id and message are required", domain.ErrInvalidArgument)
	}

	user, err := s.store.GetOrCreateUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	session, err := s.resolveSession(ctx, user, req.SessionID, req.Message)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.AppendMessage(ctx, session.SessionID, domain.RoleUser, req.Message); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	history, err := s.store.RecentMessages(ctx, session.SessionID, s.config.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	result := &domain.ChatResult{
		SessionID:   session.SessionID,
		UserMessage: req.Message,
	}

	reply, genErr := s.gen.Generate(ctx, s.promptFor(history))
	if genErr != nil {
		s.log.Warn("generation failed, returning degraded reply",
			zap.String("session_id", session.SessionID),
			zap.Error(genErr))
		result.Degraded = true
		result.FailureDetail = genErr.Error()
		result.AIResponse = "AI service failed: " + genErr.Error()
		return result, nil
	}

	result.AIResponse = reply
	if _, err := s.store.AppendMessage(ctx, session.SessionID, domain.RoleAssistant, reply); err != nil {
		// The reply already exists; losing the assistant row must not fail the turn.
		s.log.Warn("failed to persist assistant reply",
			zap.String("session_id", session.SessionID),
			zap.Error(err))
	}
	return result, nil
}

// resolveSession mints a new session when no ID was supplied, or looks up
// an existing one. A session owned by another user is reported as missing,
// never reassigned.
func (s *Service) resolveSession(ctx context.Context, user *domain.User, sessionID, firstMessage string) (*domain.Session, error) {
	if sessionID == "" {
		session := &domain.Session{
			SessionID: uuid.NewString(),
			UserID:    user.UserID,
			Title:     domain.SessionTitle(firstMessage),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.CreateSession(ctx, session); err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
		return session, nil
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.UserID != user.UserID {
		return nil, fmt.Errorf("%w: invalid session_id", domain.ErrNotFound)
	}
	return session, nil
}

// promptFor builds the provider message list: the fixed system instruction
// followed by the trailing history window in chronological order. The
// window already contains the just-appended user message.
func (s *Service) promptFor(history []domain.Message) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(history)+1)
	messages = append(messages, llm.ChatMessage{Role: "system", Content: s.config.SystemPrompt})
	for _, m := range history {
		messages = append(messages, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return messages
}
