package symbols

import (
	"sort"

	"github.com/oneirolab/dreamflow/internal/models"
)

// categoryWeights bias the ranking towards symbol classes that carry more
// interpretive weight. Versioned constants; changing them reorders stored
// rankings.
var categoryWeights = map[string]float64{
	"animals":  1.2,
	"water":    1.1,
	"flight":   1.3,
	"people":   1.0,
	"objects":  0.9,
	"places":   0.8,
	"abstract": 1.1,
}

const defaultCategoryWeight = 1.0

// MapSymbols joins extracted symbols with their dictionary entries and ranks
// them by confidence weighted per category. Symbols with no dictionary entry
// at all (exact, cross-category or substring) are dropped silently: an absent
// meaning is not an error.
//
// The sort is stable, so equal ranking scores keep extraction order and
// repeated runs over the same input produce identical output.
func MapSymbols(extracted []models.ExtractedSymbol, dict *Dictionary) []models.MappedSymbol {
	mapped := make([]models.MappedSymbol, 0, len(extracted))

	for _, symbol := range extracted {
		def, ok := dict.Lookup(symbol.Symbol, symbol.Category)
		if !ok {
			continue
		}

		meaning := def.Psychological
		if meaning == "" {
			meaning = "Unknown meaning"
		}

		weight, ok := categoryWeights[symbol.Category]
		if !ok {
			weight = defaultCategoryWeight
		}

		mapped = append(mapped, models.MappedSymbol{
			Symbol:           symbol.Symbol,
			Category:         symbol.Category,
			Meaning:          meaning,
			Keywords:         def.Meanings,
			Confidence:       symbol.Confidence,
			CulturalMeanings: def.CulturalVariants,
			Context:          symbol.Context,
			RankingScore:     symbol.Confidence * weight,
		})
	}

	sort.SliceStable(mapped, func(i, j int) bool {
		return mapped[i].RankingScore > mapped[j].RankingScore
	})
	return mapped
}
