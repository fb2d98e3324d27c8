package interpretation

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneirolab/dreamflow/internal/models"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.response}},
		},
	}, nil
}

func TestParseInsights(t *testing.T) {
	response := `Here are the insights:
1. This dream suggests transformation.
2. The symbols indicate a desire for freedom.

- A dashed insight survives too.
Not a list line, skipped.
3. Emotional tone reflects inner conflict.`

	insights := parseInsights(response)

	require.Len(t, insights, 4)
	assert.Equal(t, "This dream suggests transformation.", insights[0])
	assert.Equal(t, "A dashed insight survives too.", insights[2])
}

func TestParseInsights_CapsAtFive(t *testing.T) {
	response := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g"
	assert.Len(t, parseInsights(response), 5)
}

func TestPsychologicalInsights_UsesCompletion(t *testing.T) {
	stub := &stubCompleter{response: "1. First insight.\n2. Second insight."}
	composer := NewComposerWithClient(stub, "test-model")

	insights := composer.PsychologicalInsights(context.Background(), "I was flying", nil, "neutral")

	assert.Equal(t, []string{"First insight.", "Second insight."}, insights)
	assert.Equal(t, 1, stub.calls)
}

func TestPsychologicalInsights_FallbackOnError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("boom")}
	composer := NewComposerWithClient(stub, "test-model")

	insights := composer.PsychologicalInsights(context.Background(), "I was flying", nil, "neutral")

	assert.Equal(t, fallbackInsights, insights)
	assert.Equal(t, completionRetries, stub.calls)
}

func TestComposeInterpretation_DisabledClient(t *testing.T) {
	composer := NewComposerWithClient(nil, "test-model")

	out := composer.ComposeInterpretation(context.Background(), "I was flying", nil, nil)

	assert.Equal(t, fallbackInterpretation, out)
}

func TestConversationalReply_FallbackSelection(t *testing.T) {
	composer := NewComposerWithClient(nil, "test-model")
	ctx := context.Background()

	assert.Equal(t, fallbackConversationalReplies[0],
		composer.ConversationalReply(ctx, "d", "i", "What does the snake symbol mean?"))
	assert.Equal(t, fallbackConversationalReplies[1],
		composer.ConversationalReply(ctx, "d", "i", "Why did I dream this?"))
	assert.Equal(t, fallbackConversationalReplies[2],
		composer.ConversationalReply(ctx, "d", "i", "Tell me more about it."))
}

func TestBuildInsightsPrompt_LimitsSymbols(t *testing.T) {
	var symbols []models.MappedSymbol
	for i := 0; i < 8; i++ {
		symbols = append(symbols, models.MappedSymbol{Symbol: "Snake", Meaning: "transformation"})
	}

	prompt := buildInsightsPrompt("dream", symbols, "anxious")

	assert.Equal(t, maxPromptSymbols, strings.Count(prompt, "Snake (transformation)"))
	assert.Contains(t, prompt, "Emotional tone: anxious")
}
