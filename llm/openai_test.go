package llm

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectSentences(t *testing.T) {
	sentenceRe := regexp.MustCompile(`[^\.!\?]*[\.!\?]`)
	buffer := &strings.Builder{}

	// sentences arrive split across stream chunks
	assert.Empty(t, collectSentences(buffer, "The talk covers", sentenceRe))
	assert.Equal(t, []string{"The talk covers three ideas."},
		collectSentences(buffer, " three ideas. The first", sentenceRe))
	assert.Equal(t, []string{"The first one is simple!", "Second?"},
		collectSentences(buffer, " one is simple! Second? And", sentenceRe))
	assert.Equal(t, " And", buffer.String())
}

func TestNewSummarizerValidation(t *testing.T) {
	_, err := NewSummarizer("", "gpt-4o-mini")
	assert.Error(t, err)

	_, err = NewSummarizer("sk-test", "")
	assert.Error(t, err)

	s, err := NewSummarizer("sk-test", "gpt-4o-mini")
	assert.NoError(t, err)
	assert.NotNil(t, s)
}
