package models

// ExtractedSymbol is a single keyword hit from the symbol tables. Confidence
// is always within [0,1].
type ExtractedSymbol struct {
	Symbol     string  `json:"symbol"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`
}

type EntityMention struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

type EmotionSignal struct {
	Emotion       string   `json:"emotion"`
	Intensity     float64  `json:"intensity"`
	KeywordsFound []string `json:"keywords_found"`
}

// DreamElements is the extractor's sole output: everything the downstream
// mapper and composer need, produced fresh per request.
type DreamElements struct {
	Symbols       []ExtractedSymbol `json:"symbols"`
	Entities      []EntityMention   `json:"entities"`
	Emotions      []EmotionSignal   `json:"emotions"`
	EmotionalTone string            `json:"emotional_tone"`
	Themes        []string          `json:"themes"`
	Archetypes    []string          `json:"archetypes"`
}

// SentimentSignal is the auxiliary VADER score computed alongside the keyword
// emotions. It never feeds the tone mapping.
type SentimentSignal struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}
