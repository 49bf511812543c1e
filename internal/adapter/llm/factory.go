package llm

import (
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	// EnvAurumMode is the environment variable name for mode selection.
	EnvAurumMode = "AURUM_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a generation client based on the AURUM_MODE
// environment variable. If AURUM_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewGenerator(logger *zap.Logger, baseURL, apiKey, model string, timeout time.Duration) Generator {
	if os.Getenv(EnvAurumMode) == ModeMock {
		logger.Info("AURUM_MODE=MOCK detected, using mock generation client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, model, timeout)
}
