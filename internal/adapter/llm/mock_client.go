package llm

import (
	"context"
	"fmt"
)

// MockClient is a canned implementation of Generator for tests and
// offline development.
type MockClient struct{}

// NewMockClient creates a new mock generation client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate returns a mock reply based on the last user message.
func (m *MockClient) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	var lastUserMessage string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			lastUserMessage = messages[i].Content
			break
		}
	}

	if lastUserMessage == "" {
		return "[MOCK] This is a mock reply.", nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock reply.", truncate(lastUserMessage, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
