package analysis

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	dotsRe       = regexp.MustCompile(`\.{2,}`)
	questionsRe  = regexp.MustCompile(`\?{2,}`)
	exclaimRe    = regexp.MustCompile(`!{2,}`)
)

// transcriptionFixes are applied in order. They cover the speech-to-text
// mistakes we see most in recorded dream reports.
var transcriptionFixes = []struct {
	from string
	to   string
}{
	{" there was ", " I was "},
	{" they was ", " I was "},
	{" we was ", " I was "},
}

// Preprocess normalizes a dream narrative: whitespace runs collapse to a
// single space, repeated sentence punctuation collapses to one mark, and
// known transcription errors are corrected. It accepts any UTF-8 input,
// never fails, and is idempotent after one pass.
func Preprocess(text string) string {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")

	cleaned = dotsRe.ReplaceAllString(cleaned, ".")
	cleaned = questionsRe.ReplaceAllString(cleaned, "?")
	cleaned = exclaimRe.ReplaceAllString(cleaned, "!")

	for _, fix := range transcriptionFixes {
		cleaned = strings.ReplaceAll(cleaned, fix.from, fix.to)
	}

	return cleaned
}
