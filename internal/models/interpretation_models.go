package models

import "time"

// DreamAnalysis is a submission after the extraction and mapping stages,
// waiting for LLM composition.
type DreamAnalysis struct {
	DreamSubmission
	CleanText     string          `json:"clean_text"`
	Elements      DreamElements   `json:"elements"`
	MappedSymbols []MappedSymbol  `json:"mapped_symbols"`
	Sentiment     SentimentSignal `json:"sentiment"`
}

// InterpretationResult is the final pipeline product stored in DynamoDB.
type InterpretationResult struct {
	DreamAnalysis
	InterpretationID      string    `json:"interpretation_id"`
	PsychologicalInsights []string  `json:"psychological_insights"`
	Interpretation        string    `json:"interpretation"`
	ConfidenceScore       float64   `json:"confidence_score"`
	ProcessingTimeMs      int64     `json:"processing_time_ms"`
	CreatedAt             time.Time `json:"created_at"`
}

// StoredInterpretation is the subset read back for conversations and
// visualization prompts.
type StoredInterpretation struct {
	InterpretationID string  `json:"interpretation_id" dynamodbav:"interpretation_id"`
	UserID           string  `json:"user_id" dynamodbav:"user_id"`
	DreamText        string  `json:"dream_text" dynamodbav:"dream_text"`
	SymbolsData      string  `json:"symbols_data" dynamodbav:"symbols_data"`
	InsightsData     string  `json:"insights_data" dynamodbav:"insights_data"`
	EmotionalTone    string  `json:"emotional_tone" dynamodbav:"emotional_tone"`
	Interpretation   string  `json:"interpretation" dynamodbav:"interpretation"`
	ConfidenceScore  float64 `json:"confidence_score" dynamodbav:"confidence_score"`
	CreatedAt        int64   `json:"created_at" dynamodbav:"created_at"`
}

type Feedback struct {
	InterpretationID string            `json:"interpretation_id" dynamodbav:"interpretation_id"`
	UserID           string            `json:"user_id" dynamodbav:"user_id"`
	FeedbackType     string            `json:"feedback_type" dynamodbav:"feedback_type"` // positive | negative | clarification
	FeedbackText     string            `json:"feedback_text,omitempty" dynamodbav:"feedback_text,omitempty"`
	UserCorrections  map[string]string `json:"user_corrections,omitempty" dynamodbav:"user_corrections,omitempty"`
}
