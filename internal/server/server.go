package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oneirolab/dreamflow/internal/analysis"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/db"
	"github.com/oneirolab/dreamflow/internal/interpretation"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/symbols"
	"github.com/oneirolab/dreamflow/internal/transcription"
	"github.com/oneirolab/dreamflow/internal/visualization"
)

const apiVersion = "1.0.0"

// Server answers dream analysis requests synchronously while handing results
// off to Kafka for storage.
type Server struct {
	dict        *symbols.Dictionary
	composer    *interpretation.Composer
	transcriber *transcription.Transcriber
}

func NewServer(dict *symbols.Dictionary, composer *interpretation.Composer, transcriber *transcription.Transcriber) *Server {
	return &Server{
		dict:        dict,
		composer:    composer,
		transcriber: transcriber,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Health)
	r.POST("/v1/dreams/analyze", s.AnalyzeDream)
	r.POST("/v1/feedback", s.SubmitFeedback)
	r.POST("/v1/conversation", s.Conversation)
	r.POST("/v1/transcribe", s.Transcribe)
	r.GET("/v1/interpretations/:id/visualization", s.Visualization)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "dreamflow",
		"version": apiVersion,
		"status":  "ok",
	})
}

// AnalyzeDream runs the full pipeline inline and responds with the finished
// interpretation. Storage happens asynchronously through the results topic.
func (s *Server) AnalyzeDream(c *gin.Context) {
	var req models.DreamAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.DreamText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dream_text must not be empty"})
		return
	}

	start := time.Now()

	clean := analysis.Preprocess(req.DreamText)
	elements := analysis.Extract(clean)
	score, label := analysis.AnalyzeSentiment(clean)
	mapped := symbols.MapSymbols(elements.Symbols, s.dict)

	ctx := c.Request.Context()
	insights := s.composer.PsychologicalInsights(ctx, clean, mapped, elements.EmotionalTone)
	narrative := s.composer.ComposeInterpretation(ctx, clean, mapped, insights)

	result := models.InterpretationResult{
		DreamAnalysis: models.DreamAnalysis{
			DreamSubmission: models.DreamSubmission{
				SubmissionID: uuid.NewString(),
				UserID:       req.UserID,
				Source:       models.SourceAPI,
				Language:     req.Language,
				Text:         req.DreamText,
				Metadata:     models.SubmissionMetadata{Timestamp: time.Now().UTC()},
			},
			CleanText:     clean,
			Elements:      elements,
			MappedSymbols: mapped,
			Sentiment:     models.SentimentSignal{Score: score, Label: label},
		},
		InterpretationID:      uuid.NewString(),
		PsychologicalInsights: insights,
		Interpretation:        narrative,
		ConfidenceScore:       meanConfidence(mapped),
		ProcessingTimeMs:      time.Since(start).Milliseconds(),
		CreatedAt:             time.Now().UTC(),
	}

	go publishResult(result)

	c.JSON(http.StatusOK, toResponse(result))
}

func (s *Server) SubmitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.InterpretationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interpretation_id is required"})
		return
	}

	fb := models.Feedback{
		InterpretationID: req.InterpretationID,
		FeedbackType:     req.FeedbackType,
		FeedbackText:     req.FeedbackText,
		UserCorrections:  req.UserCorrections,
	}

	if err := db.StoreFeedback(c.Request.Context(), fb); err != nil {
		slog.Error("[Server] Failed to store feedback", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "feedback_received"})
}

func (s *Server) Conversation(c *gin.Context) {
	var req models.ConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stored, err := db.GetInterpretation(c.Request.Context(), req.InterpretationID)
	if err != nil {
		slog.Error("[Server] Failed to fetch interpretation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interpretation"})
		return
	}
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interpretation not found"})
		return
	}

	reply := s.composer.ConversationalReply(c.Request.Context(),
		stored.DreamText, stored.Interpretation, req.Message)

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (s *Server) Transcribe(c *gin.Context) {
	audio, err := io.ReadAll(c.Request.Body)
	if err != nil || len(audio) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio payload required"})
		return
	}

	language := c.Query("language")
	if language == "" {
		language = "en"
	}

	text, err := s.transcriber.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		slog.Error("[Server] Transcription failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transcription failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) Visualization(c *gin.Context) {
	interpretationID := c.Param("id")

	stored, err := db.GetInterpretation(c.Request.Context(), interpretationID)
	if err != nil {
		slog.Error("[Server] Failed to fetch interpretation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate visualization"})
		return
	}
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interpretation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visualization_prompt": visualization.PromptFromStored(stored),
		"status":               "generation_queued",
	})
}

func publishResult(result models.InterpretationResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := kafka_client.PublishToKafka(ctx,
		kafka_client.KAFKA_TOPIC_INTERPRETATION_RESULTS,
		result.SubmissionID, result)
	if err != nil {
		slog.Error("[Server] Failed to publish interpretation result",
			slog.String("interpretation_id", result.InterpretationID),
			slog.String("error", err.Error()))
	}
}

func meanConfidence(mapped []models.MappedSymbol) float64 {
	if len(mapped) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range mapped {
		sum += s.Confidence
	}
	return sum / float64(len(mapped))
}

func toResponse(result models.InterpretationResult) models.DreamAnalysisResponse {
	views := make([]models.SymbolView, 0, len(result.MappedSymbols))
	for _, s := range result.MappedSymbols {
		views = append(views, models.SymbolView{
			Symbol:     s.Symbol,
			Meaning:    s.Meaning,
			Confidence: s.Confidence,
			Category:   s.Category,
		})
	}

	return models.DreamAnalysisResponse{
		ID:                    result.InterpretationID,
		Symbols:               views,
		PsychologicalInsights: result.PsychologicalInsights,
		EmotionalTone:         result.Elements.EmotionalTone,
		Interpretation:        result.Interpretation,
		ConfidenceScore:       result.ConfidenceScore,
		ProcessingTimeMs:      result.ProcessingTimeMs,
	}
}
