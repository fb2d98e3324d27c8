package symbols

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneirolab/dreamflow/internal/models"
)

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	dict := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	def, ok := dict.Lookup("snake", "animals")
	require.True(t, ok)
	assert.Equal(t, "Represents transformation, hidden knowledge, or repressed fears", def.Psychological)
}

func TestLoad_MalformedFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"animals": {"dog": [not json`), 0o644))

	dict := Load(path)

	_, ok := dict.Lookup("dog", "animals")
	assert.True(t, ok)
	assert.Equal(t, Default().Categories(), dict.Categories())
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.json")
	content := `{
		"weather": {
			"storm": {"meanings": ["turmoil"], "psychological": "Represents inner turmoil", "cultural_variants": {}},
			"sun": {"meanings": ["clarity"], "psychological": "Represents clarity", "cultural_variants": {}}
		},
		"animals": {
			"fox": {"meanings": ["cunning"], "psychological": "Represents cunning", "cultural_variants": {}}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dict := Load(path)

	assert.Equal(t, []string{"weather", "animals"}, dict.Categories())

	// Substring lookup scans categories in file order, so "s" resolves to
	// the first declared name of the first declared category.
	def, ok := dict.Lookup("s", "nowhere")
	require.True(t, ok)
	assert.Equal(t, "Represents inner turmoil", def.Psychological)
}

func TestLookup_ResolutionOrder(t *testing.T) {
	dict := Default()

	// Exact in own category.
	def, ok := dict.Lookup("Snake", "animals")
	require.True(t, ok)
	assert.Equal(t, []string{"transformation", "healing", "wisdom", "danger"}, def.Meanings)

	// Exact cross-category: wrong reported category still resolves.
	def, ok = dict.Lookup("mirror", "animals")
	require.True(t, ok)
	assert.Contains(t, def.Meanings, "self-reflection")

	// Substring: "fly" is contained in "flying".
	def, ok = dict.Lookup("fly", "flight")
	require.True(t, ok)
	assert.Contains(t, def.Meanings, "freedom")

	// No match anywhere.
	_, ok = dict.Lookup("zeppelin", "objects")
	assert.False(t, ok)
}

func TestWithSymbol_CopyOnWrite(t *testing.T) {
	original := Default()
	updated := original.WithSymbol("animals", "Raven", models.SymbolDefinition{
		Meanings:      []string{"omen"},
		Psychological: "Represents messages from the unconscious",
	})

	_, ok := original.Lookup("raven", "animals")
	assert.False(t, ok, "original dictionary must not see the update")

	def, ok := updated.Lookup("raven", "animals")
	require.True(t, ok)
	assert.Equal(t, []string{"omen"}, def.Meanings)

	// New categories append at the end of the declared order.
	extended := updated.WithSymbol("weather", "storm", models.SymbolDefinition{Psychological: "Represents turmoil"})
	cats := extended.Categories()
	assert.Equal(t, "weather", cats[len(cats)-1])
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.json")
	original := Default()

	require.NoError(t, original.Save(path))
	reloaded := Load(path)

	assert.Equal(t, original.Categories(), reloaded.Categories())
	want, _ := original.Lookup("falling", "flight")
	got, ok := reloaded.Lookup("falling", "flight")
	require.True(t, ok)
	assert.Equal(t, want, got)
}
