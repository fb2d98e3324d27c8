package symbols

import "github.com/oneirolab/dreamflow/internal/models"

// Default returns the compiled-in symbol dictionary used when no dictionary
// file is available. The entries and their order are fixed; interpretations
// of stored dreams depend on them.
func Default() *Dictionary {
	d := newDictionary()

	d.insert("animals", "dog", models.SymbolDefinition{
		Meanings:      []string{"loyalty", "friendship", "protection", "instinct"},
		Psychological: "Represents faithful relationships and protective instincts",
		CulturalVariants: map[string]string{
			"western": "companion and loyalty",
			"eastern": "fortune and prosperity",
		},
	})
	d.insert("animals", "snake", models.SymbolDefinition{
		Meanings:      []string{"transformation", "healing", "wisdom", "danger"},
		Psychological: "Represents transformation, hidden knowledge, or repressed fears",
		CulturalVariants: map[string]string{
			"western": "temptation or medicine",
			"eastern": "wisdom and renewal",
		},
	})
	d.insert("animals", "bird", models.SymbolDefinition{
		Meanings:      []string{"freedom", "spirituality", "messages", "perspective"},
		Psychological: "Represents desire for freedom, spiritual aspirations, or higher perspective",
		CulturalVariants: map[string]string{
			"universal": "freedom and transcendence",
		},
	})

	d.insert("water", "ocean", models.SymbolDefinition{
		Meanings:      []string{"unconscious", "emotions", "vastness", "unknown"},
		Psychological: "Represents the vast unconscious mind and deep emotions",
		CulturalVariants: map[string]string{
			"universal": "life source and mystery",
		},
	})
	d.insert("water", "river", models.SymbolDefinition{
		Meanings:      []string{"life flow", "time", "journey", "change"},
		Psychological: "Represents the flow of life and personal journey",
		CulturalVariants: map[string]string{
			"universal": "life passage and renewal",
		},
	})

	d.insert("flight", "flying", models.SymbolDefinition{
		Meanings:      []string{"freedom", "transcendence", "escape", "spiritual elevation"},
		Psychological: "Represents desire for freedom from limitations or spiritual growth",
		CulturalVariants: map[string]string{
			"universal": "liberation and aspiration",
		},
	})
	d.insert("flight", "falling", models.SymbolDefinition{
		Meanings:      []string{"loss of control", "anxiety", "failure", "letting go"},
		Psychological: "Represents fear of failure or losing control in waking life",
		CulturalVariants: map[string]string{
			"western": "anxiety and loss of control",
			"eastern": "letting go and surrender",
		},
	})

	d.insert("people", "stranger", models.SymbolDefinition{
		Meanings:      []string{"unknown aspects of self", "new opportunities", "fear of unknown"},
		Psychological: "May represent unknown aspects of personality or new life possibilities",
		CulturalVariants: map[string]string{
			"universal": "the unknown self or other",
		},
	})

	d.insert("objects", "mirror", models.SymbolDefinition{
		Meanings:      []string{"self-reflection", "truth", "vanity", "introspection"},
		Psychological: "Represents self-examination and truth about oneself",
		CulturalVariants: map[string]string{
			"western": "self-reflection and vanity",
			"eastern": "illusion and reality",
		},
	})
	d.insert("objects", "key", models.SymbolDefinition{
		Meanings:      []string{"solutions", "access", "secrets", "opportunity"},
		Psychological: "Represents access to hidden knowledge or solutions to problems",
		CulturalVariants: map[string]string{
			"universal": "access and solutions",
		},
	})

	return d
}
