package db

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneirolab/dreamflow/internal/models"
)

func TestFeedbackMarshalsWithSnakeCaseAttributes(t *testing.T) {
	// Every table in the schema uses snake_case attribute names, so the
	// Feedback item has to land the same way.
	fb := models.Feedback{
		InterpretationID: "interp-123",
		UserID:           "user-456",
		FeedbackType:     "positive",
		FeedbackText:     "the snake reading resonated",
	}

	item, err := attributevalue.MarshalMap(fb)
	require.NoError(t, err)

	for _, attr := range []string{"interpretation_id", "user_id", "feedback_type", "feedback_text"} {
		assert.Contains(t, item, attr)
	}
	assert.NotContains(t, item, "InterpretationID")
	assert.NotContains(t, item, "FeedbackType")

	ft, ok := item["feedback_type"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "positive", ft.Value)
}

func TestInterpretationToItemAttributeNames(t *testing.T) {
	result := models.InterpretationResult{
		InterpretationID:      "interp-789",
		PsychologicalInsights: []string{"transformation is underway"},
		Interpretation:        "A dream about change.",
		ConfidenceScore:       0.82,
		CreatedAt:             time.Unix(1700000000, 0),
	}
	result.UserID = "user-456"
	result.Text = "I dreamed of a snake"
	result.Elements.EmotionalTone = "negative"

	item, err := interpretationToItem(result)
	require.NoError(t, err)

	for _, attr := range []string{
		"interpretation_id", "user_id", "dream_text", "symbols_data",
		"insights_data", "emotional_tone", "interpretation",
		"confidence_score", "created_at",
	} {
		assert.Contains(t, item, attr)
	}

	id, ok := item["interpretation_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "interp-789", id.Value)
}
