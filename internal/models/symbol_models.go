package models

// SymbolDefinition is one entry of the symbol dictionary. Immutable after
// load.
type SymbolDefinition struct {
	Meanings         []string          `json:"meanings"`
	Psychological    string            `json:"psychological"`
	CulturalVariants map[string]string `json:"cultural_variants"`
}

// MappedSymbol is an extracted symbol joined with its dictionary entry and a
// ranking score in [0, 1.56].
type MappedSymbol struct {
	Symbol           string            `json:"symbol"`
	Category         string            `json:"category"`
	Meaning          string            `json:"meaning"`
	Keywords         []string          `json:"keywords"`
	Confidence       float64           `json:"confidence"`
	CulturalMeanings map[string]string `json:"cultural_meanings"`
	Context          string            `json:"context"`
	RankingScore     float64           `json:"ranking_score"`
}
