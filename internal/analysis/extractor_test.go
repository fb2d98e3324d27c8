package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SnakeAndRiver(t *testing.T) {
	elements := Extract("I saw a Snake near the River")

	var names []string
	for _, s := range elements.Symbols {
		names = append(names, s.Symbol+"/"+s.Category)
	}
	assert.Contains(t, names, "Snake/animals")
	assert.Contains(t, names, "River/water")

	// One occurrence in a 28-char string: 1*0.3+0.4 = 0.7, plus both
	// position boosts since the whole text sits inside the first and last
	// 50 characters.
	for _, s := range elements.Symbols {
		if s.Symbol == "Snake" {
			assert.InDelta(t, 0.9, s.Confidence, 1e-9)
			assert.Contains(t, s.Context, "Snake")
		}
	}

	// Capitalized tokens, first-seen order.
	require.Len(t, elements.Entities, 2)
	assert.Equal(t, "Snake", elements.Entities[0].Text)
	assert.Equal(t, "River", elements.Entities[1].Text)
	assert.Equal(t, "PERSON", elements.Entities[0].Type)
	assert.InDelta(t, 0.8, elements.Entities[0].Confidence, 1e-9)
}

func TestExtract_ToneIndependentOfSymbols(t *testing.T) {
	// "flying" and "falling" are flight symbols, not emotion keywords, so
	// the tone stays neutral.
	elements := Extract("I was flying then falling into water")

	var categories []string
	for _, s := range elements.Symbols {
		categories = append(categories, s.Category)
	}
	assert.Contains(t, categories, "flight")
	assert.Contains(t, categories, "water")
	assert.Empty(t, elements.Emotions)
	assert.Equal(t, "neutral", elements.EmotionalTone)
}

func TestExtract_EqualEmotionIntensitiesKeepDeclarationOrder(t *testing.T) {
	elements := Extract("I was scared at first and then happy")

	require.Len(t, elements.Emotions, 2)
	// fear and joy both match one of seven keywords; the stable sort keeps
	// fear first because it is declared first.
	assert.Equal(t, "fear", elements.Emotions[0].Emotion)
	assert.Equal(t, "joy", elements.Emotions[1].Emotion)
	assert.InDelta(t, 1.0/7.0, elements.Emotions[0].Intensity, 1e-9)
	assert.InDelta(t, 1.0/7.0, elements.Emotions[1].Intensity, 1e-9)
	assert.Equal(t, []string{"scared"}, elements.Emotions[0].KeywordsFound)

	assert.Equal(t, "anxious", elements.EmotionalTone)
}

func TestExtract_SubstringMatchingIsLoose(t *testing.T) {
	// Not word-boundary-aware: "cat" matches inside "category" and "car"
	// inside "scared". Existing stored analyses depend on this.
	elements := Extract("The category was strange")

	var names []string
	for _, s := range elements.Symbols {
		names = append(names, s.Symbol)
	}
	assert.Contains(t, names, "Cat")
}

func TestExtract_TopTenCapAndBounds(t *testing.T) {
	text := "dog cat bird snake spider horse wolf bear lion fish butterfly water ocean river"
	elements := Extract(text)

	assert.Len(t, elements.Symbols, 10)
	for _, s := range elements.Symbols {
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
}

func TestExtract_EmptyAndWhitespaceInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		elements := Extract(text)

		assert.Empty(t, elements.Symbols)
		assert.Empty(t, elements.Entities)
		assert.Empty(t, elements.Emotions)
		assert.Empty(t, elements.Themes)
		assert.Empty(t, elements.Archetypes)
		assert.Equal(t, "neutral", elements.EmotionalTone)
	}
}

func TestExtract_ThemesAndArchetypes(t *testing.T) {
	elements := Extract("I was walking a long road, fighting a dark monster to finish my quest")

	assert.Contains(t, elements.Themes, "journey")
	assert.Contains(t, elements.Themes, "conflict")
	assert.Contains(t, elements.Archetypes, "hero")
	assert.Contains(t, elements.Archetypes, "shadow")

	// Declaration order, not match order.
	assert.True(t, indexOf(elements.Themes, "journey") < indexOf(elements.Themes, "conflict"))
}

func TestExtract_EntityDedupFirstSeenOrder(t *testing.T) {
	elements := Extract("Alice met Bob then Alice saw Carol")

	var names []string
	for _, e := range elements.Entities {
		names = append(names, e.Text)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
}

func TestExtract_FrequencyRaisesConfidence(t *testing.T) {
	padding := strings.Repeat("and then something else happened ", 4)
	single := Extract(padding + "a dog appeared " + padding)
	double := Extract(padding + "a dog and another dog appeared " + padding)

	var singleConf, doubleConf float64
	for _, s := range single.Symbols {
		if s.Symbol == "Dog" {
			singleConf = s.Confidence
		}
	}
	for _, s := range double.Symbols {
		if s.Symbol == "Dog" {
			doubleConf = s.Confidence
		}
	}
	// 0.7 vs 1.0: both occurrences sit outside the 50-char boundary windows.
	assert.InDelta(t, 0.7, singleConf, 1e-9)
	assert.InDelta(t, 1.0, doubleConf, 1e-9)
}

func TestExtract_MultibyteText(t *testing.T) {
	// Boost and context windows count characters, not bytes, so accented or
	// CJK narratives behave like ASCII ones.
	elements := Extract(strings.Repeat("é", 20) + " dog")

	require.Len(t, elements.Symbols, 1)
	dog := elements.Symbols[0]
	assert.True(t, utf8.ValidString(dog.Context))
	assert.Contains(t, dog.Context, "dog")
	// 1*0.3+0.4 plus both position boosts: 24 characters sit inside both
	// 50-character windows even though the é prefix is 40 bytes wide.
	assert.InDelta(t, 0.9, dog.Confidence, 1e-9)
}

func TestExtract_MultibyteHeadBoostWindow(t *testing.T) {
	// "dog" starts at character 41 (byte 81): inside the first-50-character
	// window, outside the last-50 window pushed away by the padding.
	padding := strings.Repeat("then more happened ", 8)
	elements := Extract(strings.Repeat("é", 40) + " dog " + padding)

	var dogConf float64
	var dogContext string
	for _, s := range elements.Symbols {
		if s.Symbol == "Dog" {
			dogConf = s.Confidence
			dogContext = s.Context
		}
	}
	assert.InDelta(t, 0.8, dogConf, 1e-9)
	assert.True(t, utf8.ValidString(dogContext))
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
