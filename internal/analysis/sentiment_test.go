package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJournalText(t *testing.T) {
	in := "# Last night\n\nI dreamt of a river and then I was\n* flying\n* falling\n\nraw link: https://example.com/notes"
	out := NormalizeJournalText(in)

	assert.NotContains(t, out, "https://example.com")
	assert.NotContains(t, out, "#")
	assert.Contains(t, out, "river")
	assert.Contains(t, out, "flying")
}

func TestAnalyzeSentiment_Labels(t *testing.T) {
	score, label := AnalyzeSentiment("I was so happy, it was a wonderful and beautiful dream")
	assert.Greater(t, score, 0.20)
	assert.Equal(t, "positive", label)

	score, label = AnalyzeSentiment("It was a horrible terrifying nightmare and I felt awful")
	assert.Less(t, score, -0.20)
	assert.Equal(t, "negative", label)

	score, label = AnalyzeSentiment("I walked to the door")
	assert.InDelta(t, 0.0, score, 0.2)
	assert.Equal(t, "neutral", label)
}
