package analysis

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var vader = govader.NewSentimentIntensityAnalyzer()

var (
	markdownLinkRe = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func removeLinks(input string) string {
	input = markdownLinkRe.ReplaceAllString(input, "$1") // keep only the text
	input = bareURLRe.ReplaceAllString(input, "")

	return input
}

// NormalizeJournalText flattens a markdown journal entry into plain text.
// Imported journal entries go through this before Preprocess; API submissions
// never do.
func NormalizeJournalText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return removeLinks(plainText)
}

// AnalyzeSentiment scores the narrative with VADER. This is an auxiliary
// signal for the composer; the emotional tone in DreamElements stays purely
// keyword-driven.
func AnalyzeSentiment(text string) (float64, string) {
	sentiment := vader.PolarityScores(text)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}
