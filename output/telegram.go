package output

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers completed messages to one chat, in the order they
// are handed to it. Delivered messages are teed to the monitor channel on a
// best-effort basis.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
	events chan<- string
}

func NewTelegramSender(api *tgbotapi.BotAPI, chatID int64, events chan<- string) (*TelegramSender, error) {
	if api == nil {
		return nil, fmt.Errorf("telegram api is required")
	}
	return &TelegramSender{
		api:    api,
		chatID: chatID,
		events: events,
	}, nil
}

// Send posts one message to the chat. A failure is returned to the caller so
// it can stop emitting the rest of the request.
func (t *TelegramSender) Send(message string) error {
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, message)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if t.events != nil {
		// the monitor is lossy on purpose, never block delivery on it
		select {
		case t.events <- message:
		default:
		}
	}
	return nil
}
