package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess_CollapsesWhitespaceAndPunctuation(t *testing.T) {
	in := "  I was   running...   then  I stopped!!  Why??  "
	out := Preprocess(in)

	assert.Equal(t, "I was running. then I stopped! Why?", out)
}

func TestPreprocess_FixesTranscriptionErrors(t *testing.T) {
	assert.Equal(t, "and then I was flying", Preprocess("and then there was flying"))
	assert.Equal(t, "and I was lost", Preprocess("and they was lost"))
	assert.Equal(t, "suddenly I was home", Preprocess("suddenly we was home"))
}

func TestPreprocess_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", Preprocess(""))
	assert.Equal(t, "", Preprocess("   \t\n  "))
}

func TestPreprocess_NonASCII(t *testing.T) {
	in := "Ich träumte   von einem Fluß…  日本語のテキスト  "
	out := Preprocess(in)

	assert.Equal(t, "Ich träumte von einem Fluß… 日本語のテキスト", out)
}

func TestPreprocess_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  I was   running...   then there was a dog!!  ",
		"multi\nline\ttext with  spaces",
	}
	for _, in := range inputs {
		once := Preprocess(in)
		assert.Equal(t, once, Preprocess(once), "input %q", in)
	}
}
