package symbols

import "strings"

// Relationship analysis between symbols present in the same dream. These
// tables are interpretation heuristics, not part of the ranking pipeline.

type ThematicGroup struct {
	Theme   string   `json:"theme"`
	Symbols []string `json:"symbols"`
}

type SymbolRelationships struct {
	Complementary  [][2]string     `json:"complementary"`
	Conflicting    [][2]string     `json:"conflicting"`
	ThematicGroups []ThematicGroup `json:"thematic_groups"`
}

type ArchetypalMatch struct {
	Archetype string   `json:"archetype"`
	Symbols   []string `json:"symbols"`
	Meaning   string   `json:"meaning"`
}

var complementaryPairs = [][2]string{
	{"water", "flying"},
	{"key", "door"},
	{"light", "dark"},
	{"birth", "death"},
}

var conflictingPairs = [][2]string{
	{"flying", "falling"},
	{"found", "lost"},
	{"safe", "danger"},
}

var thematicGroups = []ThematicGroup{
	{"transformation", []string{"snake", "butterfly", "fire", "death", "birth"}},
	{"journey", []string{"path", "road", "bridge", "car", "walking"}},
	{"relationships", []string{"family", "friend", "lover", "stranger", "teacher"}},
	{"nature", []string{"tree", "mountain", "ocean", "forest", "bird", "animal"}},
}

var archetypalMappings = []ArchetypalMatch{
	{Archetype: "hero", Symbols: []string{"sword", "quest", "battle", "victory", "rescue"},
		Meaning: "Represents the drive to overcome challenges and achieve goals"},
	{Archetype: "shadow", Symbols: []string{"monster", "demon", "dark", "hidden", "evil"},
		Meaning: "Represents repressed or denied aspects of the self"},
	{Archetype: "anima", Symbols: []string{"wise_woman", "beautiful_woman", "guide", "inspiration"},
		Meaning: "Represents the feminine aspect of the male psyche"},
	{Archetype: "animus", Symbols: []string{"wise_man", "strong_man", "father_figure", "authority"},
		Meaning: "Represents the masculine aspect of the female psyche"},
	{Archetype: "mother", Symbols: []string{"nurturing", "protection", "home", "food", "care"},
		Meaning: "Represents nurturing, protection, and unconditional love"},
	{Archetype: "child", Symbols: []string{"innocence", "wonder", "playfulness", "potential", "new_beginning"},
		Meaning: "Represents innocence, potential, and new beginnings"},
	{Archetype: "trickster", Symbols: []string{"fool", "joker", "mischief", "chaos", "humor"},
		Meaning: "Represents the need for humor and flexibility"},
	{Archetype: "sage", Symbols: []string{"wise_old_man", "teacher", "book", "wisdom", "knowledge"},
		Meaning: "Represents wisdom, knowledge, and spiritual guidance"},
}

// Relationships reports complementary and conflicting pairings plus thematic
// clusters among the given symbol names.
func Relationships(symbols []string) SymbolRelationships {
	rel := SymbolRelationships{
		Complementary:  [][2]string{},
		Conflicting:    [][2]string{},
		ThematicGroups: []ThematicGroup{},
	}

	present := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		present[strings.ToLower(s)] = true
	}

	for _, pair := range complementaryPairs {
		if present[pair[0]] && present[pair[1]] {
			rel.Complementary = append(rel.Complementary, pair)
		}
	}
	for _, pair := range conflictingPairs {
		if present[pair[0]] && present[pair[1]] {
			rel.Conflicting = append(rel.Conflicting, pair)
		}
	}

	for _, group := range thematicGroups {
		var matching []string
		for _, s := range symbols {
			for _, member := range group.Symbols {
				if strings.ToLower(s) == member {
					matching = append(matching, s)
					break
				}
			}
		}
		if len(matching) >= 2 {
			rel.ThematicGroups = append(rel.ThematicGroups, ThematicGroup{
				Theme:   group.Theme,
				Symbols: matching,
			})
		}
	}

	return rel
}

// ArchetypalMeanings maps symbol names onto Jungian archetypes.
func ArchetypalMeanings(symbols []string) []ArchetypalMatch {
	matches := []ArchetypalMatch{}

	for _, mapping := range archetypalMappings {
		var matching []string
		for _, s := range symbols {
			for _, member := range mapping.Symbols {
				if strings.ToLower(s) == member {
					matching = append(matching, s)
					break
				}
			}
		}
		if len(matching) > 0 {
			matches = append(matches, ArchetypalMatch{
				Archetype: mapping.Archetype,
				Symbols:   matching,
				Meaning:   mapping.Meaning,
			})
		}
	}

	return matches
}
