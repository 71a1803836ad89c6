package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsingh-rishi/transcript-bot/monitor"
)

type stubIntake struct {
	updates []tgbotapi.Update
}

func (s *stubIntake) Accept(update tgbotapi.Update) {
	s.updates = append(s.updates, update)
}

func TestHealth(t *testing.T) {
	hub, err := monitor.NewHub(make(chan string))
	require.NoError(t, err)
	app := New(&stubIntake{}, hub, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestWebhookAcceptsUpdate(t *testing.T) {
	hub, err := monitor.NewHub(make(chan string))
	require.NoError(t, err)
	intake := &stubIntake{}
	app := New(intake, hub, "")

	payload := `{"update_id":7,"message":{"message_id":1,"chat":{"id":42},"text":"vid123 en"}}`
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, intake.updates, 1)
	require.NotNil(t, intake.updates[0].Message)
	assert.Equal(t, int64(42), intake.updates[0].Message.Chat.ID)
	assert.Equal(t, "vid123 en", intake.updates[0].Message.Text)
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	hub, err := monitor.NewHub(make(chan string))
	require.NoError(t, err)
	intake := &stubIntake{}
	app := New(intake, hub, "s3cret")

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(`{}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
	assert.Empty(t, intake.updates)
}

func TestWebhookRejectsBadPayload(t *testing.T) {
	hub, err := monitor.NewHub(make(chan string))
	require.NoError(t, err)
	intake := &stubIntake{}
	app := New(intake, hub, "")

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(`{not json`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, intake.updates)
}
