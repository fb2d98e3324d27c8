package transcription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe_DisabledReturnsMock(t *testing.T) {
	tr := &Transcriber{}

	text, err := tr.Transcribe(context.Background(), []byte("audio"), "en")

	require.NoError(t, err)
	assert.Equal(t, mockTranscription, text)
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()

	assert.Len(t, langs, 19)
	assert.Equal(t, "en", langs[0])
	assert.True(t, IsSupportedLanguage("ja"))
	assert.False(t, IsSupportedLanguage("xx"))

	// Callers get a copy, not the backing slice.
	langs[0] = "zz"
	assert.Equal(t, "en", SupportedLanguages()[0])
}
