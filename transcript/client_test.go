package transcript

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, watchPage func(base string) string, timedtext string) *Client {
	t.Helper()

	var base string
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(base))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, timedtext)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	base = srv.URL

	return &Client{
		httpClient: srv.Client(),
		watchURL:   srv.URL + "/watch",
	}
}

func watchPageWithTracks(base string) string {
	return fmt.Sprintf(`<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[`+
		`{"languageCode":"es","baseUrl":"%s/timedtext?lang=es"},`+
		`{"languageCode":"en","baseUrl":"%s/timedtext?lang=en"}`+
		`]}},"videoDetails":{"title":"a {tricky} \"title\""}};</script></html>`, base, base)
}

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>` +
	`<transcript>` +
	`<text start="0.5" dur="1.5">Hello &amp;#39;world&amp;#39;</text>` +
	`<text start="2" dur="3.25">第二行</text>` +
	`</transcript>`

func TestClientFetch(t *testing.T) {
	client := newTestClient(t, watchPageWithTracks, sampleTimedText)

	entries, err := client.Fetch(context.Background(), "abc123", "en")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// the XML layer unescapes once; the double-encoded apostrophe stays
	assert.Equal(t, "Hello &#39;world&#39;", entries[0].Text)
	assert.Equal(t, 0.5, entries[0].Start)
	assert.Equal(t, 1.5, entries[0].Duration)
	assert.Equal(t, "第二行", entries[1].Text)
	assert.Equal(t, 3.25, entries[1].Duration)
}

func TestClientFetchLanguageUnavailable(t *testing.T) {
	client := newTestClient(t, watchPageWithTracks, sampleTimedText)

	_, err := client.Fetch(context.Background(), "abc123", "fr")
	var unavailable *LanguageUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "fr", unavailable.Requested)
	assert.Equal(t, "abc123", unavailable.VideoID)
	assert.Equal(t, []string{"es", "en"}, unavailable.Available)
}

func TestClientFetchTranscriptDisabled(t *testing.T) {
	client := newTestClient(t, func(string) string {
		return `<html><script>var ytInitialPlayerResponse = {"videoDetails":{"title":"no captions"}};</script></html>`
	}, "")

	_, err := client.Fetch(context.Background(), "abc123", "en")
	assert.ErrorIs(t, err, ErrTranscriptDisabled)
}

func TestClientFetchVideoUnavailable(t *testing.T) {
	client := newTestClient(t, func(string) string {
		return `<html><body>This video is private</body></html>`
	}, "")

	_, err := client.Fetch(context.Background(), "abc123", "en")
	assert.ErrorIs(t, err, ErrVideoUnavailable)
}

func TestExtractPlayerResponse(t *testing.T) {
	page := `junk ytInitialPlayerResponse = {"a":{"b":"close } brace in \"a\" string"},"c":1};var other = {};`
	player, ok := extractPlayerResponse(page)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":"close } brace in \"a\" string"},"c":1}`, player)

	_, ok = extractPlayerResponse(`no marker here`)
	assert.False(t, ok)

	_, ok = extractPlayerResponse(`ytInitialPlayerResponse = {"never":"closed"`)
	assert.False(t, ok)
}
