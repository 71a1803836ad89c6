package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mrsingh-rishi/transcript-bot/format"
)

const systemInstructions = `You summarize video transcripts. Produce a concise summary of the transcript you are given, in the same language as the transcript, as short plain-text sentences with no markdown.`

// maxPromptBytes caps how much transcript travels with one summary request.
const maxPromptBytes = 48000

// Summarizer streams transcript summaries from OpenAI one sentence at a
// time, so they can be packed and delivered while the model is still
// talking.
type Summarizer struct {
	client *openai.Client
	model  string
}

func NewSummarizer(apiKey string, model string) (*Summarizer, error) {
	// Params Validation
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &Summarizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Summarize streams a summary of transcript into out, one sentence at a
// time, and closes out when the stream ends.
func (s *Summarizer) Summarize(ctx context.Context, transcript string, out chan<- string) error {
	defer close(out)

	if len(transcript) > maxPromptBytes {
		chunks, err := format.SplitSafeUTF8(transcript, maxPromptBytes)
		if err != nil {
			return err
		}
		transcript = chunks[0]
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
		Stream: true,
	}
	stream, err := s.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("start summary stream: %w", err)
	}
	defer stream.Close()

	sentenceRe := regexp.MustCompile(`[^\.!\?]*[\.!\?]`)
	buffer := &strings.Builder{}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("receive summary stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}

		for _, sentence := range collectSentences(buffer, chunk, sentenceRe) {
			select {
			case out <- sentence:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if leftover := strings.TrimSpace(buffer.String()); leftover != "" {
		select {
		case out <- leftover:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// collectSentences appends chunk to the buffer, extracts every complete
// sentence, and leaves the remainder buffered for the next chunk.
func collectSentences(buffer *strings.Builder, chunk string, sentenceRe *regexp.Regexp) []string {
	buffer.WriteString(chunk)
	text := buffer.String()

	var sentences []string
	for {
		loc := sentenceRe.FindStringIndex(text)
		if loc == nil {
			break
		}
		if sentence := strings.TrimSpace(text[:loc[1]]); sentence != "" {
			sentences = append(sentences, sentence)
		}
		text = text[loc[1]:]
	}

	// reset buffer to leftover
	buffer.Reset()
	buffer.WriteString(text)
	return sentences
}
