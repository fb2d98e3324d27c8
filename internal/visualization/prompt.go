package visualization

import (
	"fmt"
	"strings"

	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/utils"
)

const maxPromptSymbols = 3

// Prompt builds an image-generation prompt from the top-ranked symbols of a
// stored interpretation.
func Prompt(symbols []models.MappedSymbol) string {
	var parts []string
	for i, s := range symbols {
		if i >= maxPromptSymbols {
			break
		}
		parts = append(parts, fmt.Sprintf("%s representing %s", s.Symbol, s.Meaning))
	}

	return fmt.Sprintf("A surreal dreamlike scene featuring %s, artistic, ethereal, symbolic",
		strings.Join(parts, ", "))
}

// PromptFromStored parses the symbols JSON of a stored interpretation. A
// malformed payload yields a symbol-free prompt rather than an error.
func PromptFromStored(stored *models.StoredInterpretation) string {
	var symbols []models.MappedSymbol
	if err := utils.DeserializeFromJSON([]byte(stored.SymbolsData), &symbols); err != nil {
		symbols = nil
	}
	return Prompt(symbols)
}
