package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneirolab/dreamflow/internal/models"
)

func TestMapSymbols_SnakeRanking(t *testing.T) {
	dict := Default()
	extracted := []models.ExtractedSymbol{
		{Symbol: "Snake", Category: "animals", Confidence: 0.9, Context: "a Snake near the river"},
	}

	mapped := MapSymbols(extracted, dict)

	require.Len(t, mapped, 1)
	assert.Equal(t, "Snake", mapped[0].Symbol)
	assert.Equal(t, "Represents transformation, hidden knowledge, or repressed fears", mapped[0].Meaning)
	assert.InDelta(t, 0.9*1.2, mapped[0].RankingScore, 1e-9)
	assert.Equal(t, map[string]string{
		"western": "temptation or medicine",
		"eastern": "wisdom and renewal",
	}, mapped[0].CulturalMeanings)
}

func TestMapSymbols_UnknownSymbolDropped(t *testing.T) {
	dict := Default()
	extracted := []models.ExtractedSymbol{
		{Symbol: "Snake", Category: "animals", Confidence: 0.7},
		{Symbol: "Zeppelin", Category: "objects", Confidence: 0.9},
	}

	mapped := MapSymbols(extracted, dict)

	require.Len(t, mapped, 1)
	assert.Equal(t, "Snake", mapped[0].Symbol)
}

func TestMapSymbols_CategoryWeightsReorder(t *testing.T) {
	dict := Default()
	// Same confidence; flight (1.3) must outrank animals (1.2) despite
	// coming later in the input.
	extracted := []models.ExtractedSymbol{
		{Symbol: "Snake", Category: "animals", Confidence: 0.8},
		{Symbol: "Flying", Category: "flight", Confidence: 0.8},
	}

	mapped := MapSymbols(extracted, dict)

	require.Len(t, mapped, 2)
	assert.Equal(t, "Flying", mapped[0].Symbol)
	assert.InDelta(t, 0.8*1.3, mapped[0].RankingScore, 1e-9)
	assert.Equal(t, "Snake", mapped[1].Symbol)
}

func TestMapSymbols_StableTieBreak(t *testing.T) {
	dict := Default()
	// dog and snake share category and confidence; input order must be
	// preserved, byte for byte, run after run.
	extracted := []models.ExtractedSymbol{
		{Symbol: "Dog", Category: "animals", Confidence: 0.6},
		{Symbol: "Snake", Category: "animals", Confidence: 0.6},
		{Symbol: "Bird", Category: "animals", Confidence: 0.6},
	}

	for i := 0; i < 10; i++ {
		mapped := MapSymbols(extracted, dict)
		require.Len(t, mapped, 3)
		assert.Equal(t, "Dog", mapped[0].Symbol)
		assert.Equal(t, "Snake", mapped[1].Symbol)
		assert.Equal(t, "Bird", mapped[2].Symbol)
	}
}

func TestMapSymbols_ScoreBounds(t *testing.T) {
	dict := Default()
	extracted := []models.ExtractedSymbol{
		{Symbol: "Flying", Category: "flight", Confidence: 1.0},
		{Symbol: "Mirror", Category: "objects", Confidence: 1.0},
	}

	for _, m := range MapSymbols(extracted, dict) {
		assert.GreaterOrEqual(t, m.RankingScore, 0.0)
		assert.LessOrEqual(t, m.RankingScore, 1.3)
	}
}

func TestMapSymbols_EmptyInput(t *testing.T) {
	assert.Empty(t, MapSymbols(nil, Default()))
}

func TestRelationships(t *testing.T) {
	rel := Relationships([]string{"flying", "falling", "water", "snake", "butterfly"})

	assert.Contains(t, rel.Complementary, [2]string{"water", "flying"})
	assert.Contains(t, rel.Conflicting, [2]string{"flying", "falling"})
	require.Len(t, rel.ThematicGroups, 1)
	assert.Equal(t, "transformation", rel.ThematicGroups[0].Theme)
	assert.ElementsMatch(t, []string{"snake", "butterfly"}, rel.ThematicGroups[0].Symbols)
}

func TestArchetypalMeanings(t *testing.T) {
	matches := ArchetypalMeanings([]string{"monster", "quest", "book"})

	var archetypes []string
	for _, m := range matches {
		archetypes = append(archetypes, m.Archetype)
	}
	assert.Equal(t, []string{"hero", "shadow", "sage"}, archetypes)
}
