package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/oneirolab/dreamflow/internal/models"
)

// JournalClient pulls dream entries from the companion journaling service,
// which protects its API with OAuth2 client credentials.
type JournalClient struct {
	Config  *clientcredentials.Config
	Client  *http.Client
	BaseURL string
	mu      *sync.Mutex
}

var (
	journalClientInstance *JournalClient
	journalClientOnce     sync.Once
	journalRateLimitMutex sync.Mutex
)

func GetJournalClient() *JournalClient {
	journalClientOnce.Do(func() {
		baseURL := os.Getenv("JOURNAL_API_URL")
		if baseURL == "" {
			baseURL = "http://localhost:9090"
		}

		oauthConf := &clientcredentials.Config{
			ClientID:     os.Getenv("JOURNAL_CLIENT_ID"),
			ClientSecret: os.Getenv("JOURNAL_CLIENT_SECRET"),
			TokenURL:     baseURL + "/oauth/token",
			AuthStyle:    oauth2.AuthStyleInHeader,
		}

		journalClientInstance = &JournalClient{
			Config:  oauthConf,
			Client:  oauthConf.Client(context.Background()),
			BaseURL: baseURL,
			mu:      &sync.Mutex{},
		}
	})

	return journalClientInstance
}

func (jc *JournalClient) RefreshClient() {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	jc.Client = jc.Config.Client(context.Background())
}

// FetchEntries pulls journal entries written since the given time. Expired
// tokens trigger a refresh and retry, 429s back off exponentially.
func (jc *JournalClient) FetchEntries(since time.Time) ([]models.JournalEntry, error) {
	parsedUrl, err := url.Parse(jc.BaseURL + "/v1/entries")
	if err != nil {
		return nil, fmt.Errorf("[JournalClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("since", since.UTC().Format(time.RFC3339))
	queryParams.Add("limit", "100")
	parsedUrl.RawQuery = queryParams.Encode()

	journalRateLimitMutex.Lock()
	time.Sleep(INITIAL_BACKOFF)
	journalRateLimitMutex.Unlock()

	req, err := http.NewRequest("GET", parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := jc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		slog.Warn("[JournalClient] Token expired - Refreshing and Retrying...")
		jc.RefreshClient()
		return jc.FetchEntries(since)
	case http.StatusTooManyRequests:
		slog.Warn("[JournalClient] 429 Too Many Requests - Retrying with backoff")
		return jc.retryWithBackoff(since)
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var entries []models.JournalEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, fmt.Errorf("[JournalClient] Failed to decode entries: %w", err)
		}
		return entries, nil
	}
	return nil, fmt.Errorf("[JournalClient] Unexpected status code %d", resp.StatusCode)
}

func (jc *JournalClient) retryWithBackoff(since time.Time) ([]models.JournalEntry, error) {
	backoff := INITIAL_BACKOFF
	for i := 1; i < MAX_RETRIES; i++ {
		slog.Warn("[JournalClient] Retrying request",
			slog.Int("attempt", i), slog.Duration("backoff", backoff))

		time.Sleep(backoff)

		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}

		entries, err := jc.FetchEntries(since)
		if err == nil {
			return entries, nil
		}
	}
	return nil, fmt.Errorf("[JournalClient] Max retries reached request failed")
}
