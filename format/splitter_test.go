package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSafeUTF8Basic(t *testing.T) {
	chunks, err := SplitSafeUTF8("Hello, 世界! This is a test string.", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, 世", "界! This ", "is a test ", "string."}, chunks)
}

func TestSplitSafeUTF8OnlyMultibyte(t *testing.T) {
	chunks, err := SplitSafeUTF8("こんにちは世界", 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"こんに", "ちは世", "界"}, chunks)
}

func TestSplitSafeUTF8ExactBoundaries(t *testing.T) {
	// "Hello, " is 7 bytes, "世" and "界" are 3 bytes each, "!" is 1 byte
	chunks, err := SplitSafeUTF8("Hello, 世界!", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, ", "世界!"}, chunks)
}

func TestSplitSafeUTF8MaxBytesTooSmall(t *testing.T) {
	_, err := SplitSafeUTF8("Hello, 世界", 1)
	assert.ErrorIs(t, err, ErrBudgetTooSmall)
}

func TestSplitSafeUTF8ZeroMaxBytes(t *testing.T) {
	_, err := SplitSafeUTF8("Hello", 0)
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestSplitSafeUTF8Empty(t *testing.T) {
	chunks, err := SplitSafeUTF8("", 10)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplitSafeUTF8RoundTrip(t *testing.T) {
	inputs := []string{
		"plain ascii text with several words",
		"mixed ascii と日本語 and emoji 🙂🙂🙂 in one line",
		"ααββγγ",
		strings.Repeat("世界", 100),
	}
	budgets := []int{3, 4, 7, 10, 100}

	for _, input := range inputs {
		for _, budget := range budgets {
			chunks, err := SplitSafeUTF8(input, budget)
			if budget < 4 && strings.ContainsRune(input, '🙂') {
				// a 4-byte rune cannot fit a 3-byte budget
				assert.ErrorIs(t, err, ErrBudgetTooSmall)
				continue
			}
			require.NoError(t, err, "input %q budget %d", input, budget)
			assert.Equal(t, input, strings.Join(chunks, ""), "budget %d", budget)
			for _, chunk := range chunks {
				assert.True(t, utf8.ValidString(chunk), "chunk %q is not valid UTF-8", chunk)
				assert.LessOrEqual(t, len(chunk), budget)
				assert.NotEmpty(t, chunk)
			}
		}
	}
}
