package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/mrsingh-rishi/transcript-bot/format"
	"github.com/mrsingh-rishi/transcript-bot/transcript"
)

// Provider is the transcript source the session talks to, language fallback
// included.
type Provider interface {
	FetchWithFallback(ctx context.Context, videoID, lang string) ([]transcript.Entry, string, error)
}

// Summarizer streams a transcript summary into out one fragment at a time,
// closing out when done.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, out chan<- string) error
}

const defaultLang = "en"

const helpText = `Send me a YouTube video ID (optionally followed by a language code) and I will reply with its transcript.

/summarize <video ID> [lang] sends a summary instead of the full transcript.`

// Session processes a single incoming request end to end: parse, fetch,
// decode, accumulate, send. All of its state lives for one request only.
type Session struct {
	sender     format.Sender
	provider   Provider
	summarizer Summarizer // nil when summaries are disabled
	budget     int
}

func NewSession(sender format.Sender, provider Provider, summarizer Summarizer, budget int) (*Session, error) {
	// Params Validation
	if sender == nil {
		return nil, fmt.Errorf("sender is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if budget <= 0 {
		return nil, format.ErrInvalidBudget
	}
	return &Session{
		sender:     sender,
		provider:   provider,
		summarizer: summarizer,
		budget:     budget,
	}, nil
}

// Handle runs one request. Failures are reported to the user as messages;
// the returned error is for the caller's log only.
func (s *Session) Handle(ctx context.Context, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return s.sender.Send("Please provide a video ID.")
	}

	summarize := false
	switch fields[0] {
	case "/start", "/help":
		return s.sender.Send(helpText)
	case "/summarize":
		summarize = true
		fields = fields[1:]
		if len(fields) == 0 {
			return s.sender.Send("Please provide a video ID.")
		}
	}

	videoID := fields[0]
	lang := defaultLang
	if len(fields) > 1 {
		lang = fields[1]
	}

	entries, notice, err := s.provider.FetchWithFallback(ctx, videoID, lang)
	if err != nil {
		return s.sender.Send(fmt.Sprintf("Error fetching transcript: %v", err))
	}
	if notice != "" {
		if err := s.sender.Send(notice); err != nil {
			return err
		}
	}

	if summarize {
		return s.summarize(ctx, entries)
	}
	return s.deliver(entries)
}

// deliver streams the transcript entries through the accumulator in order.
func (s *Session) deliver(entries []transcript.Entry) error {
	acc, err := format.NewAccumulator(s.budget, s.sender)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := acc.Push(decode(entry.Text)); err != nil {
			return s.report(err)
		}
	}
	if err := acc.Flush(); err != nil {
		return s.report(err)
	}
	if acc.Sent() == 0 {
		return s.sender.Send("Transcript could not be retrieved or is empty.")
	}
	return nil
}

func (s *Session) summarize(ctx context.Context, entries []transcript.Entry) error {
	if s.summarizer == nil {
		return s.sender.Send("Summaries are not enabled on this bot.")
	}

	full := &strings.Builder{}
	for _, entry := range entries {
		if full.Len() > 0 {
			full.WriteString(" ")
		}
		full.WriteString(decode(entry.Text))
	}
	if full.Len() == 0 {
		return s.sender.Send("Transcript could not be retrieved or is empty.")
	}

	sentences := make(chan string)
	errc := make(chan error, 1)
	go func() {
		errc <- s.summarizer.Summarize(ctx, full.String(), sentences)
	}()

	acc, err := format.NewAccumulator(s.budget, s.sender)
	if err != nil {
		return err
	}
	for sentence := range sentences {
		if err := acc.Push(sentence); err != nil {
			// drain so the summarizer goroutine can finish
			for range sentences {
			}
			<-errc
			return s.report(err)
		}
	}
	if err := <-errc; err != nil {
		log.Printf("Session: summary stream error: %v", err)
		return s.sender.Send(fmt.Sprintf("Error summarizing transcript: %v", err))
	}
	if err := acc.Flush(); err != nil {
		return s.report(err)
	}
	if acc.Sent() == 0 {
		return s.sender.Send("The summary came back empty.")
	}
	return nil
}

// report maps a processing failure to the user-facing error line. A send
// failure is not reported back through the same broken channel.
func (s *Session) report(err error) error {
	if errors.Is(err, format.ErrBudgetTooSmall) || errors.Is(err, format.ErrInvalidBudget) {
		if sendErr := s.sender.Send(fmt.Sprintf("Error processing transcript: %v", err)); sendErr != nil {
			return sendErr
		}
	}
	return err
}

// decode strips the HTML entity encoding YouTube applies to caption text.
// Double-encoded apostrophes come out of the XML layer as "&#39;", so they
// need this second unescape pass.
func decode(raw string) string {
	return html.UnescapeString(raw)
}
