package interpretation

import (
	"fmt"
	"strings"

	"github.com/oneirolab/dreamflow/internal/models"
)

const systemPrompt = "You are an expert dream analyst."

const insightsPromptTemplate = `You are an expert dream analyst with deep knowledge of psychology, particularly Jungian analysis, Freudian theory, and modern dream research.

Analyze this dream and provide 3-5 psychological insights:

Dream: "%s"

Detected symbols: %s
Emotional tone: %s

Please provide insights that:
1. Connect the symbols to possible psychological meanings
2. Consider the emotional context
3. Relate to potential waking life concerns
4. Use established psychological frameworks
5. Are supportive and constructive

Format as a numbered list of insights, each 1-2 sentences long.`

const interpretationPromptTemplate = `As a professional dream interpreter, provide a comprehensive yet accessible interpretation of this dream.

Dream: "%s"

Key Symbols:
%s

Psychological Insights:
%s

Create a cohesive interpretation that:
1. Weaves together the symbols and insights
2. Provides practical relevance to the dreamer's life
3. Is encouraging and constructive
4. Is 2-3 paragraphs long
5. Uses accessible language while maintaining depth

Begin with "This dream appears to..." and provide a thoughtful, integrated analysis.`

const conversationPromptTemplate = `You are continuing a conversation about a dream interpretation. The user has a follow-up question.

Original Dream: "%s"

Original Interpretation: "%s"

User's Question: "%s"

Provide a helpful, conversational response that:
1. Directly addresses their question
2. References the original dream and interpretation
3. Offers additional insights if relevant
4. Is supportive and encouraging
5. Is 1-2 paragraphs long

Maintain the tone of a knowledgeable but approachable dream counselor.`

const maxPromptSymbols = 5

func buildInsightsPrompt(dreamText string, symbols []models.MappedSymbol, tone string) string {
	var parts []string
	for i, s := range symbols {
		if i >= maxPromptSymbols {
			break
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Symbol, s.Meaning))
	}
	return fmt.Sprintf(insightsPromptTemplate, dreamText, strings.Join(parts, ", "), tone)
}

func buildInterpretationPrompt(dreamText string, symbols []models.MappedSymbol, insights []string) string {
	var symbolLines []string
	for i, s := range symbols {
		if i >= maxPromptSymbols {
			break
		}
		symbolLines = append(symbolLines, fmt.Sprintf("- %s: %s", s.Symbol, s.Meaning))
	}
	var insightLines []string
	for _, insight := range insights {
		insightLines = append(insightLines, "- "+insight)
	}
	return fmt.Sprintf(interpretationPromptTemplate, dreamText,
		strings.Join(symbolLines, "\n"), strings.Join(insightLines, "\n"))
}

func buildConversationPrompt(dream, interpretation, question string) string {
	return fmt.Sprintf(conversationPromptTemplate, dream, interpretation, question)
}
