package clients

import (
	"log/slog"
	"os"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	whisperClientInstance *WhisperClient
	whisperOnce           sync.Once
)

// WhisperClient wraps the speech-to-text client. Without an API key the
// client stays disabled and transcription returns a canned placeholder.
type WhisperClient struct {
	Client  *openai.Client
	Enabled bool
}

func GetWhisperClient() *WhisperClient {
	whisperOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			slog.Warn("[WhisperClient] Missing OPENAI_API_KEY in environment variables, transcription disabled")
			whisperClientInstance = &WhisperClient{}
			return
		}

		whisperClientInstance = &WhisperClient{
			Client:  openai.NewClient(option.WithAPIKey(apiKey)),
			Enabled: true,
		}
		slog.Info("[WhisperClient] Whisper client initialized")
	})
	return whisperClientInstance
}
