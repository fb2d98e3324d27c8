package interpretation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/oneirolab/dreamflow/internal/clients"
	"github.com/oneirolab/dreamflow/internal/models"
)

const (
	composerModel       = openai.GPT4
	composerMaxTokens   = 1000
	composerTemperature = 0.7
	conversationTemp    = 0.8
	completionRetries   = 5
	maxInsights         = 5
)

// ChatCompleter is the slice of the OpenAI client the composer needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Composer turns ranked symbols and emotional tone into prose insights and a
// narrative interpretation. When the OpenAI client is unavailable it serves
// canned fallback text instead of failing: callers always receive a usable
// interpretation.
type Composer struct {
	client ChatCompleter
	model  string
}

func NewComposer() *Composer {
	oc := clients.GetOpenAIClient()
	if !oc.Enabled {
		return &Composer{model: composerModel}
	}
	return &Composer{client: oc.Client, model: composerModel}
}

// NewComposerWithClient wires an explicit client, used by tests.
func NewComposerWithClient(client ChatCompleter, model string) *Composer {
	return &Composer{client: client, model: model}
}

// PsychologicalInsights returns 3-5 short psychological insights for a dream.
func (c *Composer) PsychologicalInsights(ctx context.Context, dreamText string, symbols []models.MappedSymbol, tone string) []string {
	if c.client == nil {
		return fallbackInsights
	}

	prompt := buildInsightsPrompt(dreamText, symbols, tone)
	response, err := c.complete(ctx, prompt, composerTemperature)
	if err != nil {
		slog.Error("[Composer] Insight generation failed, using fallback insights",
			slog.String("error", err.Error()))
		return fallbackInsights
	}

	insights := parseInsights(response)
	if len(insights) == 0 {
		slog.Warn("[Composer] No insights parsed from response, using fallback insights")
		return fallbackInsights
	}
	return insights
}

// ComposeInterpretation weaves symbols and insights into the final narrative.
func (c *Composer) ComposeInterpretation(ctx context.Context, dreamText string, symbols []models.MappedSymbol, insights []string) string {
	if c.client == nil {
		return fallbackInterpretation
	}

	prompt := buildInterpretationPrompt(dreamText, symbols, insights)
	response, err := c.complete(ctx, prompt, composerTemperature)
	if err != nil {
		slog.Error("[Composer] Interpretation generation failed, using fallback text",
			slog.String("error", err.Error()))
		return fallbackInterpretation
	}
	return strings.TrimSpace(response)
}

// ConversationalReply answers a follow-up question about a stored
// interpretation.
func (c *Composer) ConversationalReply(ctx context.Context, dream, interpretation, question string) string {
	if c.client == nil {
		return fallbackConversationalReply(question)
	}

	prompt := buildConversationPrompt(dream, interpretation, question)
	response, err := c.complete(ctx, prompt, conversationTemp)
	if err != nil {
		slog.Error("[Composer] Conversational reply failed, using fallback reply",
			slog.String("error", err.Error()))
		return fallbackConversationalReply(question)
	}
	return strings.TrimSpace(response)
}

func (c *Composer) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	var resp openai.ChatCompletionResponse
	var err error

	for i := 0; i < completionRetries; i++ {
		start := time.Now()
		resp, err = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   composerMaxTokens,
			Temperature: temperature,
		})
		if err == nil {
			break
		}
		slog.Warn("[Composer] OpenAI request failed, retrying...",
			slog.String("error", err.Error()),
			slog.Int("attempt", i+1),
			slog.Duration("elapsed", time.Since(start)))
	}
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// parseInsights extracts the numbered or dashed lines of a completion,
// stripping list prefixes, capped at five insights.
func parseInsights(response string) []string {
	var insights []string

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first := line[0]
		if (first < '0' || first > '9') && !strings.HasPrefix(line, "-") {
			continue
		}
		cleaned := strings.TrimSpace(strings.TrimLeft(line, "0123456789.- "))
		if cleaned != "" {
			insights = append(insights, cleaned)
		}
		if len(insights) == maxInsights {
			break
		}
	}

	return insights
}
