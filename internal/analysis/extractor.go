package analysis

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/oneirolab/dreamflow/internal/models"
)

const (
	maxSymbols         = 10
	contextWindow      = 30
	positionBoostSpan  = 50
	entityConfidence   = 0.8
	entityType         = "PERSON"
	baseConfidence     = 0.4
	perOccurrenceBoost = 0.3
	positionBoost      = 0.1
)

var properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

// Extract scans a normalized dream narrative for symbols, entities, emotions,
// themes and archetypes. Matching is case-insensitive substring containment,
// deliberately not word-boundary-aware ("cat" matches inside "category");
// compatibility with existing stored analyses depends on that looseness.
//
// Extract never fails: an internal fault degrades to an empty DreamElements
// with a neutral tone.
func Extract(text string) (elements models.DreamElements) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Extractor] Extraction failed, returning empty elements",
				slog.Any("panic", r))
			elements = emptyElements()
		}
	}()

	emotions := extractEmotions(text)

	elements = models.DreamElements{
		Symbols:       extractSymbols(text),
		Entities:      extractEntities(text),
		Emotions:      emotions,
		EmotionalTone: determineTone(emotions),
		Themes:        matchCategories(text, themeCategories),
		Archetypes:    matchCategories(text, archetypeCategories),
	}
	return elements
}

func emptyElements() models.DreamElements {
	return models.DreamElements{
		Symbols:       []models.ExtractedSymbol{},
		Entities:      []models.EntityMention{},
		Emotions:      []models.EmotionSignal{},
		EmotionalTone: neutralTone,
		Themes:        []string{},
		Archetypes:    []string{},
	}
}

func extractSymbols(text string) []models.ExtractedSymbol {
	found := []models.ExtractedSymbol{}
	textLower := strings.ToLower(text)

	for _, category := range symbolCategories {
		for _, symbol := range category.Keywords {
			if !strings.Contains(textLower, symbol) {
				continue
			}
			found = append(found, models.ExtractedSymbol{
				Symbol:     titleWord(symbol),
				Category:   category.Name,
				Confidence: symbolConfidence(symbol, text, textLower),
				Context:    symbolContext(symbol, text, textLower),
			})
		}
	}

	// Stable: equal confidences keep table declaration order.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Confidence > found[j].Confidence
	})
	if len(found) > maxSymbols {
		found = found[:maxSymbols]
	}
	return found
}

// symbolConfidence scores frequency plus a boost for appearing near the start
// or end of the narrative. The boost windows are measured in characters, not
// bytes, so multibyte narratives score the same as ASCII ones. Always within
// [0,1].
func symbolConfidence(symbol, text, textLower string) float64 {
	frequency := strings.Count(textLower, symbol)
	confidence := float64(frequency)*perOccurrenceBoost + baseConfidence
	if confidence > 1.0 {
		confidence = 1.0
	}

	runes := []rune(textLower)

	head := runes
	if len(head) > positionBoostSpan {
		head = head[:positionBoostSpan]
	}
	if strings.Contains(string(head), symbol) {
		confidence += positionBoost
	}

	tail := runes
	if len(tail) > positionBoostSpan {
		tail = tail[len(tail)-positionBoostSpan:]
	}
	if strings.Contains(string(tail), symbol) {
		confidence += positionBoost
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// symbolContext returns the text surrounding the first occurrence of the
// symbol, trimmed. The window is counted in characters so the snippet never
// starts or ends mid-rune.
func symbolContext(symbol, text, textLower string) string {
	index := strings.Index(textLower, symbol)
	if index == -1 {
		return ""
	}

	runeIndex := utf8.RuneCountInString(textLower[:index])
	runes := []rune(text)

	start := runeIndex - contextWindow
	if start < 0 {
		start = 0
	}
	end := runeIndex + utf8.RuneCountInString(symbol) + contextWindow
	if end > len(runes) {
		end = len(runes)
	}

	return strings.TrimSpace(string(runes[start:end]))
}

// extractEntities collects capitalized tokens as generic PERSON mentions,
// deduplicated in first-seen order so output is deterministic.
func extractEntities(text string) []models.EntityMention {
	entities := []models.EntityMention{}
	seen := make(map[string]bool)

	for _, noun := range properNounRe.FindAllString(text, -1) {
		if seen[noun] {
			continue
		}
		seen[noun] = true
		entities = append(entities, models.EntityMention{
			Text:       noun,
			Type:       entityType,
			Confidence: entityConfidence,
		})
	}
	return entities
}

func extractEmotions(text string) []models.EmotionSignal {
	found := []models.EmotionSignal{}
	textLower := strings.ToLower(text)

	for _, category := range emotionCategories {
		var matched []string
		for _, keyword := range category.Keywords {
			if strings.Contains(textLower, keyword) {
				matched = append(matched, keyword)
			}
		}
		if len(matched) == 0 {
			continue
		}
		intensity := float64(len(matched)) / float64(len(category.Keywords))
		if intensity > 1.0 {
			intensity = 1.0
		}
		found = append(found, models.EmotionSignal{
			Emotion:       category.Name,
			Intensity:     intensity,
			KeywordsFound: matched,
		})
	}

	// Stable: equal intensities keep category declaration order
	// (fear, joy, sadness, anger, surprise, confusion, peace).
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Intensity > found[j].Intensity
	})
	return found
}

func determineTone(emotions []models.EmotionSignal) string {
	if len(emotions) == 0 {
		return neutralTone
	}
	return ToneFor(emotions[0].Emotion)
}

func matchCategories(text string, categories []keywordCategory) []string {
	found := []string{}
	textLower := strings.ToLower(text)

	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(textLower, keyword) {
				found = append(found, category.Name)
				break
			}
		}
	}
	return found
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
