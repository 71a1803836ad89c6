package server

import (
	"encoding/json"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	"github.com/mrsingh-rishi/transcript-bot/monitor"
)

// UpdateAcceptor queues one Telegram update for delivery. *bot.Bot satisfies it.
type UpdateAcceptor interface {
	Accept(update tgbotapi.Update)
}

// New assembles the HTTP surface: health probe, Telegram webhook intake and
// the live delivery monitor.
func New(intake UpdateAcceptor, hub *monitor.Hub, webhookSecret string) *fiber.App {
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// POST /webhook receives Telegram updates for webhook deployments
	app.Post("/webhook", func(c *fiber.Ctx) error {
		if webhookSecret != "" && c.Get("X-Telegram-Bot-Api-Secret-Token") != webhookSecret {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		var update tgbotapi.Update
		if err := json.Unmarshal(c.Body(), &update); err != nil {
			log.Printf("Server: bad webhook payload: %v", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}
		intake.Accept(update)
		return c.SendStatus(fiber.StatusOK)
	})

	// Middleware to require WebSocket upgrade on /live
	app.Use("/live", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// GET /live streams every delivered message to connected observers
	app.Get("/live", fiberws.New(func(conn *fiberws.Conn) {
		defer conn.Close()
		hub.Register(conn)
		defer hub.Unregister(conn)

		// observers only listen; the read loop just waits for the close frame
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))

	return app
}
