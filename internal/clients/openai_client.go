package clients

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

// OpenAIClient wraps the chat-completion client. When no API key is set the
// client stays disabled and interpretation falls back to canned responses
// instead of refusing to start.
type OpenAIClient struct {
	Client  *openai.Client
	Enabled bool
}

func GetOpenAIClient() *OpenAIClient {
	openAIOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			slog.Warn("[OpenAIClient] Missing OPENAI_API_KEY in environment variables, running with fallback interpretations")
			openAIClientInstance = &OpenAIClient{}
			return
		}

		config := openai.DefaultConfig(apiKey)
		httpClient := &http.Client{
			Timeout: openAIRequestTimeout,
		}
		config.HTTPClient = httpClient

		openAIClientInstance = &OpenAIClient{
			Client:  openai.NewClientWithConfig(config),
			Enabled: true,
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout", slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance
}
