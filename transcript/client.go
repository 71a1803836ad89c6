package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultWatchURL      = "https://www.youtube.com/watch"
	playerResponseMarker = "ytInitialPlayerResponse = "
	captionTracksPath    = "captions.playerCaptionsTracklistRenderer.captionTracks"
)

// Entry is one transcript line as served by the caption track. Text is still
// entity-encoded exactly the way YouTube returns it; decoding happens at the
// delivery boundary.
type Entry struct {
	Text     string
	Start    float64
	Duration float64
}

// Client fetches caption tracks from YouTube's public watch pages.
type Client struct {
	httpClient *http.Client
	watchURL   string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		watchURL:   defaultWatchURL,
	}
}

// Fetch returns the transcript entries of videoID in lang. When lang has no
// caption track it fails with *LanguageUnavailableError listing the tracks
// the video does have.
func (c *Client) Fetch(ctx context.Context, videoID, lang string) ([]Entry, error) {
	page, err := c.get(ctx, c.watchURL+"?v="+url.QueryEscape(videoID))
	if err != nil {
		return nil, err
	}

	player, ok := extractPlayerResponse(page)
	if !ok {
		return nil, ErrVideoUnavailable
	}

	tracks := gjson.Get(player, captionTracksPath).Array()
	if len(tracks) == 0 {
		return nil, ErrTranscriptDisabled
	}

	available := make([]string, 0, len(tracks))
	trackURL := ""
	for _, track := range tracks {
		code := track.Get("languageCode").String()
		available = append(available, code)
		if code == lang && trackURL == "" {
			trackURL = track.Get("baseUrl").String()
		}
	}
	if trackURL == "" {
		return nil, &LanguageUnavailableError{VideoID: videoID, Requested: lang, Available: available}
	}

	body, err := c.get(ctx, trackURL)
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept-Language", "en-US")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}

// extractPlayerResponse pulls the ytInitialPlayerResponse JSON object out of
// the watch page by balancing braces from the marker, skipping braces inside
// JSON strings.
func extractPlayerResponse(page string) (string, bool) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return "", false
	}
	rest := page[idx+len(playerResponseMarker):]
	if len(rest) == 0 || rest[0] != '{' {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return rest[:i+1], true
			}
		}
	}
	return "", false
}

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Body     string  `xml:",chardata"`
}

func parseTimedText(body string) ([]Entry, error) {
	var doc timedText
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}
	entries := make([]Entry, 0, len(doc.Texts))
	for _, line := range doc.Texts {
		entries = append(entries, Entry{Text: line.Body, Start: line.Start, Duration: line.Duration})
	}
	return entries, nil
}
