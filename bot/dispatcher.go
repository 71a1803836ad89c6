package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mrsingh-rishi/transcript-bot/format"
	"github.com/mrsingh-rishi/transcript-bot/model"
	"github.com/mrsingh-rishi/transcript-bot/output"
)

// Dispatcher turns queued delivery jobs into per-request sessions. It is the
// delivery worker's handler.
type Dispatcher struct {
	api        *tgbotapi.BotAPI
	provider   Provider
	summarizer Summarizer
	budget     int
	events     chan<- string
}

func NewDispatcher(api *tgbotapi.BotAPI, provider Provider, summarizer Summarizer, budget int, events chan<- string) (*Dispatcher, error) {
	// Params Validation
	if api == nil {
		return nil, fmt.Errorf("telegram api is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if budget <= 0 {
		return nil, format.ErrInvalidBudget
	}
	return &Dispatcher{
		api:        api,
		provider:   provider,
		summarizer: summarizer,
		budget:     budget,
		events:     events,
	}, nil
}

// Handle processes one job. Failures are logged with the job's request ID;
// the worker keeps running.
func (d *Dispatcher) Handle(ctx context.Context, job model.DeliveryJob) {
	sender, err := output.NewTelegramSender(d.api, job.ChatID, d.events)
	if err != nil {
		log.Printf("Dispatcher: request %s: %v", job.RequestID, err)
		return
	}
	session, err := NewSession(sender, d.provider, d.summarizer, d.budget)
	if err != nil {
		log.Printf("Dispatcher: request %s: %v", job.RequestID, err)
		return
	}
	if err := session.Handle(ctx, job.Text); err != nil {
		log.Printf("Dispatcher: request %s failed: %v", job.RequestID, err)
	}
}
