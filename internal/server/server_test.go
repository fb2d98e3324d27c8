package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneirolab/dreamflow/internal/interpretation"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/symbols"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := NewServer(symbols.Default(), interpretation.NewComposerWithClient(nil, "test-model"), nil)
	return s.SetupRouter()
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dreamflow")
}

func TestAnalyzeDream_EmptyTextRejected(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(models.DreamAnalysisRequest{DreamText: "   "})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/dreams/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeDream_ReturnsRankedSymbols(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(models.DreamAnalysisRequest{
		DreamText: "I saw a snake near the river and felt afraid",
		UserID:    "user-1",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/dreams/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DreamAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "anxious", resp.EmotionalTone)
	assert.NotEmpty(t, resp.Interpretation)
	assert.NotEmpty(t, resp.PsychologicalInsights)

	require.NotEmpty(t, resp.Symbols)
	assert.Equal(t, "Snake", resp.Symbols[0].Symbol)
	assert.Greater(t, resp.ConfidenceScore, 0.0)
}

func TestTranscribe_EmptyBodyRejected(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/transcribe", bytes.NewReader(nil))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
