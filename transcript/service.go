package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrsingh-rishi/transcript-bot/language"
)

// Fetcher is the raw transcript source. *Client satisfies it; tests use a
// generated mock.
type Fetcher interface {
	Fetch(ctx context.Context, videoID, lang string) ([]Entry, error)
}

// Service wraps a Fetcher with the one automatic language-fallback retry the
// bot performs before giving up.
type Service struct {
	fetcher   Fetcher
	preferred []string
}

func NewService(fetcher Fetcher, preferred []string) (*Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	if len(preferred) == 0 {
		preferred = language.DefaultPreferred
	}
	return &Service{fetcher: fetcher, preferred: preferred}, nil
}

// FetchWithFallback fetches the transcript in lang. When the source reports
// the language as unavailable it retries exactly once with the fallback
// choice and returns a notice describing the substitution. Any other
// failure, or a failure of the retry itself, is returned unchanged.
func (s *Service) FetchWithFallback(ctx context.Context, videoID, lang string) ([]Entry, string, error) {
	entries, err := s.fetcher.Fetch(ctx, videoID, lang)
	var unavailable *LanguageUnavailableError
	if !errors.As(err, &unavailable) {
		return entries, "", err
	}

	fallback := language.SelectFallback(unavailable.Available, s.preferred)
	entries, err = s.fetcher.Fetch(ctx, videoID, fallback)
	if err != nil {
		return nil, "", err
	}
	notice := fmt.Sprintf("Requested language '%s' not available. Using fallback language '%s'. Available languages: %s",
		lang, fallback, strings.Join(unavailable.Available, ", "))
	return entries, notice, nil
}
