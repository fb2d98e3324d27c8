package transcription

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"

	"github.com/oneirolab/dreamflow/internal/clients"
)

const defaultLanguage = "en"

// mockTranscription stands in for Whisper output when no API key is present,
// so the voice-journal flow stays exercisable in local development.
const mockTranscription = "I was walking through a beautiful forest when suddenly I could fly above the trees. The water below was crystal clear and I could see my reflection changing."

var supportedLanguages = []string{
	"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
	"ar", "hi", "tr", "pl", "nl", "sv", "da", "no", "fi",
}

// Transcriber converts recorded dream audio into text via the Whisper API.
type Transcriber struct {
	client  *openai.Client
	enabled bool
}

func NewTranscriber() *Transcriber {
	wc := clients.GetWhisperClient()
	return &Transcriber{client: wc.Client, enabled: wc.Enabled}
}

// Transcribe converts audio bytes into dream text. An unsupported language
// falls back to English rather than failing the request.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if !t.enabled {
		slog.Warn("[Transcriber] Whisper disabled, returning mock transcription")
		return mockTranscription, nil
	}

	if !IsSupportedLanguage(language) {
		slog.Warn("[Transcriber] Unsupported language, defaulting to English",
			slog.String("language", language))
		language = defaultLanguage
	}

	transcript, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:     openai.FileParam(bytes.NewReader(audio), "dream.wav", "audio/wav"),
		Model:    openai.F(openai.AudioModelWhisper1),
		Language: openai.F(language),
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return strings.TrimSpace(transcript.Text), nil
}

// SupportedLanguages lists the Whisper language codes the API accepts.
func SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

func IsSupportedLanguage(code string) bool {
	for _, l := range supportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
