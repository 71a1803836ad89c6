package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/mrsingh-rishi/transcript-bot/model"
	"github.com/mrsingh-rishi/transcript-bot/queue"
)

// Bot is the Telegram intake: it receives updates and enqueues one delivery
// job per incoming message.
type Bot struct {
	api  *tgbotapi.BotAPI
	jobs *queue.Queue[model.DeliveryJob]
}

func New(token string, jobs *queue.Queue[model.DeliveryJob]) (*Bot, error) {
	// Params Validation
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if jobs == nil {
		return nil, fmt.Errorf("job queue is required")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	log.Printf("✅ Authorized as @%s", api.Self.UserName)
	return &Bot{api: api, jobs: jobs}, nil
}

// API exposes the underlying client for senders and the webhook route.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Listen long-polls Telegram until ctx is cancelled, enqueueing a job per
// incoming message.
func (b *Bot) Listen(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.Accept(update)
		}
	}
}

// Accept enqueues a delivery job for one update. Shared by the poll loop and
// the webhook route.
func (b *Bot) Accept(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	job := model.DeliveryJob{
		RequestID: uuid.NewString(),
		ChatID:    update.Message.Chat.ID,
		Text:      update.Message.Text,
	}
	log.Printf("Bot: queued request %s from chat %d", job.RequestID, job.ChatID)
	b.jobs.Enqueue(job)
}
