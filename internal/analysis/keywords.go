package analysis

// Versioned keyword tables for the heuristic extractor. Declaration order is
// load-bearing: it fixes iteration order, which fixes tie-breaks in the
// stable sorts downstream. Treat any edit as a behavior change.

type keywordCategory struct {
	Name     string
	Keywords []string
}

var symbolCategories = []keywordCategory{
	{"animals", []string{"dog", "cat", "bird", "snake", "spider", "horse", "wolf", "bear", "lion", "fish", "butterfly"}},
	{"water", []string{"water", "ocean", "sea", "lake", "river", "rain", "swimming", "drowning", "flood", "waves"}},
	{"flight", []string{"flying", "falling", "jumping", "running", "climbing", "soaring", "floating"}},
	{"people", []string{"mother", "father", "family", "friend", "stranger", "child", "baby", "lover", "teacher"}},
	{"places", []string{"house", "school", "workplace", "forest", "mountain", "cave", "bridge", "door", "window", "room"}},
	{"objects", []string{"car", "phone", "mirror", "key", "book", "money", "clothes", "food", "fire", "light"}},
	{"abstract", []string{"death", "birth", "lost", "found", "trapped", "free", "hidden", "revealed", "broken", "whole"}},
}

var emotionCategories = []keywordCategory{
	{"fear", []string{"scared", "afraid", "terrified", "frightened", "anxious", "worried", "panic"}},
	{"joy", []string{"happy", "excited", "joyful", "elated", "cheerful", "delighted", "pleased"}},
	{"sadness", []string{"sad", "depressed", "melancholy", "grief", "sorrow", "disappointed"}},
	{"anger", []string{"angry", "furious", "mad", "irritated", "frustrated", "rage"}},
	{"surprise", []string{"surprised", "amazed", "shocked", "astonished", "stunned"}},
	{"confusion", []string{"confused", "puzzled", "lost", "uncertain", "bewildered"}},
	{"peace", []string{"peaceful", "calm", "serene", "relaxed", "tranquil", "content"}},
}

// Hall & Van de Castle inspired theme groups.
var themeCategories = []keywordCategory{
	{"transformation", []string{"changing", "becoming", "turning", "growing", "shrinking", "metamorphosis"}},
	{"journey", []string{"traveling", "walking", "driving", "path", "road", "destination", "journey"}},
	{"conflict", []string{"fighting", "arguing", "battle", "war", "struggle", "competition"}},
	{"relationships", []string{"meeting", "talking", "loving", "friendship", "family", "romantic"}},
	{"achievement", []string{"winning", "success", "graduation", "promotion", "accomplishment"}},
	{"loss", []string{"losing", "missing", "dead", "gone", "lost", "disappeared"}},
	{"exploration", []string{"discovering", "exploring", "finding", "searching", "adventure"}},
}

// Jungian archetype keyword groups.
var archetypeCategories = []keywordCategory{
	{"hero", []string{"saving", "rescuing", "fighting", "brave", "courage", "quest"}},
	{"shadow", []string{"dark", "evil", "monster", "demon", "enemy", "hidden"}},
	{"anima_animus", []string{"mysterious person", "guide", "wise", "beautiful", "handsome"}},
	{"mother", []string{"nurturing", "caring", "protective", "feeding", "mother"}},
	{"father", []string{"authority", "teaching", "guiding", "strong", "father"}},
	{"trickster", []string{"joking", "laughing", "fooling", "mischief", "playful"}},
	{"wise_old_man", []string{"teacher", "mentor", "advice", "wisdom", "elder"}},
}

var toneByEmotion = map[string]string{
	"fear":      "anxious",
	"joy":       "positive",
	"sadness":   "melancholic",
	"anger":     "intense",
	"surprise":  "transformative",
	"confusion": "uncertain",
	"peace":     "serene",
}

const neutralTone = "neutral"

// ToneFor maps a dominant emotion label to its coarse tone. Unknown labels
// come back neutral.
func ToneFor(emotion string) string {
	if tone, ok := toneByEmotion[emotion]; ok {
		return tone
	}
	return neutralTone
}
