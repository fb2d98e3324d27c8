package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneirolab/dreamflow/internal/models"
)

func TestPrompt_TopThreeSymbols(t *testing.T) {
	symbols := []models.MappedSymbol{
		{Symbol: "Snake", Meaning: "transformation"},
		{Symbol: "River", Meaning: "the flow of life"},
		{Symbol: "Key", Meaning: "hidden solutions"},
		{Symbol: "Mirror", Meaning: "self-reflection"},
	}

	prompt := Prompt(symbols)

	assert.Equal(t,
		"A surreal dreamlike scene featuring Snake representing transformation, River representing the flow of life, Key representing hidden solutions, artistic, ethereal, symbolic",
		prompt)
	assert.NotContains(t, prompt, "Mirror")
}

func TestPromptFromStored_MalformedSymbolsData(t *testing.T) {
	stored := &models.StoredInterpretation{SymbolsData: "{not json"}

	prompt := PromptFromStored(stored)

	assert.Equal(t, "A surreal dreamlike scene featuring , artistic, ethereal, symbolic", prompt)
}

func TestPromptFromStored_RoundTrip(t *testing.T) {
	stored := &models.StoredInterpretation{
		SymbolsData: `[{"symbol":"Ocean","meaning":"the unconscious"}]`,
	}

	prompt := PromptFromStored(stored)

	assert.Contains(t, prompt, "Ocean representing the unconscious")
}
