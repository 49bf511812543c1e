// Package llm provides the external language-generation client.
package llm

import "context"

// ChatMessage is one turn of conversational context sent to the provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces one assistant reply for a conversation. A single
// synchronous call per turn; no retry. Any transport or provider-side
// failure (auth, rate limit, malformed response, empty choice list) is
// returned as an error wrapping domain.ErrUnavailable.
type Generator interface {
	Generate(ctx context.Context, messages []ChatMessage) (string, error)
}

// Ensure both implementations satisfy the Generator interface.
var (
	_ Generator = (*Client)(nil)
	_ Generator = (*MockClient)(nil)
)
