package models

type DreamAnalysisRequest struct {
	DreamText string `json:"dream_text"`
	UserID    string `json:"user_id,omitempty"`
	Language  string `json:"language,omitempty"`
}

type SymbolView struct {
	Symbol     string  `json:"symbol"`
	Meaning    string  `json:"meaning"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

type DreamAnalysisResponse struct {
	ID                    string       `json:"id"`
	Symbols               []SymbolView `json:"symbols"`
	PsychologicalInsights []string     `json:"psychological_insights"`
	EmotionalTone         string       `json:"emotional_tone"`
	Interpretation        string       `json:"interpretation"`
	ConfidenceScore       float64      `json:"confidence_score"`
	ProcessingTimeMs      int64        `json:"processing_time_ms"`
}

type FeedbackRequest struct {
	InterpretationID string            `json:"interpretation_id"`
	FeedbackType     string            `json:"feedback_type"`
	FeedbackText     string            `json:"feedback_text,omitempty"`
	UserCorrections  map[string]string `json:"user_corrections,omitempty"`
}

type ConversationRequest struct {
	InterpretationID string `json:"interpretation_id"`
	Message          string `json:"message"`
}
