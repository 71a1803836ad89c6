package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mrsingh-rishi/transcript-bot/bot"
	"github.com/mrsingh-rishi/transcript-bot/config"
	"github.com/mrsingh-rishi/transcript-bot/llm"
	"github.com/mrsingh-rishi/transcript-bot/model"
	"github.com/mrsingh-rishi/transcript-bot/monitor"
	"github.com/mrsingh-rishi/transcript-bot/queue"
	"github.com/mrsingh-rishi/transcript-bot/server"
	"github.com/mrsingh-rishi/transcript-bot/transcript"
	"github.com/mrsingh-rishi/transcript-bot/workers"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	jobs := queue.New[model.DeliveryJob]()

	tgBot, err := bot.New(cfg.TelegramToken, jobs)
	if err != nil {
		log.Fatal(err)
	}

	service, err := transcript.NewService(transcript.NewClient(), cfg.PreferredLangs)
	if err != nil {
		log.Fatal(err)
	}

	var summarizer bot.Summarizer
	if cfg.OpenAIKey != "" {
		s, err := llm.NewSummarizer(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal(err)
		}
		summarizer = s
		log.Println("Summaries enabled")
	}

	events := make(chan string, 64)
	hub, err := monitor.NewHub(events)
	if err != nil {
		log.Fatal(err)
	}
	hub.Start()
	defer hub.Stop()

	dispatcher, err := bot.NewDispatcher(tgBot.API(), service, summarizer, cfg.MaxMessageSize, events)
	if err != nil {
		log.Fatal(err)
	}

	worker, err := workers.NewDeliveryWorker(jobs, dispatcher)
	if err != nil {
		log.Fatal(err)
	}
	worker.Start()
	defer worker.Stop()

	if cfg.Mode == config.ModePoll {
		go tgBot.Listen(context.Background())
		log.Println("Listening for Telegram updates (long poll)")
	} else {
		log.Println("Expecting Telegram updates on /webhook")
	}

	app := server.New(tgBot, hub, cfg.WebhookSecret)
	log.Printf("Fiber server listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
