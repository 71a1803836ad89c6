package format

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidBudget means the configured byte budget is not positive.
	ErrInvalidBudget = errors.New("max bytes must be greater than zero")
	// ErrBudgetTooSmall means a single character is wider than the budget,
	// so no progress can be made.
	ErrBudgetTooSmall = errors.New("max bytes is too small to fit the next character")
)

// SplitSafeUTF8 splits s into chunks of at most maxBytes bytes each without
// ever cutting a multi-byte character in half. Chunks are returned in order
// and concatenating them yields s exactly.
func SplitSafeUTF8(s string, maxBytes int) ([]string, error) {
	if maxBytes <= 0 {
		return nil, ErrInvalidBudget
	}

	var chunks []string
	start := 0
	for start < len(s) {
		// The remainder fits, take it and stop.
		if len(s)-start <= maxBytes {
			chunks = append(chunks, s[start:])
			break
		}

		// Candidate cut point, walked backward until it lands on the start
		// of a character rather than a continuation byte.
		end := start + maxBytes
		for end > start && !utf8.RuneStart(s[end]) {
			end--
		}

		// Walked all the way back: the next character alone is too wide.
		if end == start {
			return nil, ErrBudgetTooSmall
		}

		chunks = append(chunks, s[start:end])
		start = end
	}
	return chunks, nil
}
