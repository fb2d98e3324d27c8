package interpretation

import "strings"

// Canned responses returned when the OpenAI client is unavailable or keeps
// failing. The pipeline always produces a best-effort interpretation.

var fallbackInsights = []string{
	"This dream suggests you're processing feelings of transformation in your current life situation.",
	"The symbolic elements indicate a desire for greater freedom and new perspectives on existing challenges.",
	"Your subconscious appears to be working through themes of personal growth and emotional development.",
	"The dream imagery reflects inner conflicts between security and the need for positive change.",
	"These symbols often appear when the psyche is preparing for important life transitions.",
}

const fallbackInterpretation = `This dream appears to reflect a significant period of personal transformation and growth in your life. The symbolic elements present in your dream suggest that your unconscious mind is actively processing the balance between maintaining stability and embracing new opportunities for expansion. The interplay of these powerful symbols indicates that you're currently navigating a meaningful transition where personal development requires releasing outdated patterns and beliefs.

The emotional landscape of your dream reveals that while uncertainty can feel challenging, your deeper wisdom is actually preparing you for positive developments ahead. This dream seems to be encouraging you to trust in your innate ability to handle life's transitions and to remain open to the growth opportunities that are emerging in your path forward.`

var fallbackConversationalReplies = []string{
	"That's an insightful question about your dream symbolism. The elements you're asking about often represent the psyche's way of processing important life themes and emotional development.",
	"Your question touches on a fascinating aspect of dream interpretation. This particular symbol frequently appears when we're working through significant personal growth and transformation.",
	"I'm glad you asked about that detail. In dream analysis, this type of imagery typically reflects your unconscious mind's efforts to integrate new understandings about yourself and your life situation.",
	"That's a thoughtful observation about your dream. These symbolic elements often emerge when we're ready to embrace positive changes and new perspectives in our waking life.",
}

// fallbackConversationalReply picks a canned reply keyed off the question's
// wording.
func fallbackConversationalReply(question string) string {
	lower := strings.ToLower(question)

	if containsAny(lower, "symbol", "meaning", "represent") {
		return fallbackConversationalReplies[0]
	}
	if containsAny(lower, "why", "how", "what") {
		return fallbackConversationalReplies[1]
	}
	return fallbackConversationalReplies[2]
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
