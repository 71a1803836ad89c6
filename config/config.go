package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultMaxMessageSize stays below Telegram's 4096-byte ceiling, leaving
	// headroom so the separator never pushes a message over the hard limit.
	DefaultMaxMessageSize = 4000

	defaultPort        = "3000"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Modes for receiving Telegram updates.
const (
	ModePoll    = "poll"
	ModeWebhook = "webhook"
)

type Config struct {
	TelegramToken  string
	MaxMessageSize int
	PreferredLangs []string
	Mode           string
	Port           string
	WebhookSecret  string
	OpenAIKey      string
	OpenAIModel    string
}

// Load reads configuration from the environment. Callers load .env first if
// one should participate.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		MaxMessageSize: DefaultMaxMessageSize,
		Mode:           ModePoll,
		Port:           defaultPort,
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET"),
		OpenAIKey:      os.Getenv("OPEN_AI_API_KEY"),
		OpenAIModel:    defaultOpenAIModel,
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN must be set")
	}

	if raw := os.Getenv("MAX_MESSAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("MAX_MESSAGE_SIZE must be an integer: %w", err)
		}
		cfg.MaxMessageSize = size
	}
	if cfg.MaxMessageSize <= 0 {
		return nil, fmt.Errorf("MAX_MESSAGE_SIZE must be greater than zero")
	}

	if raw := os.Getenv("PREFERRED_LANGS"); raw != "" {
		for _, lang := range strings.Split(raw, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				cfg.PreferredLangs = append(cfg.PreferredLangs, lang)
			}
		}
	}

	if mode := os.Getenv("BOT_MODE"); mode != "" {
		if mode != ModePoll && mode != ModeWebhook {
			return nil, fmt.Errorf("BOT_MODE must be %q or %q", ModePoll, ModeWebhook)
		}
		cfg.Mode = mode
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if model := os.Getenv("OPEN_AI_MODEL"); model != "" {
		cfg.OpenAIModel = model
	}

	return cfg, nil
}
