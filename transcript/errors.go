package transcript

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrVideoUnavailable means the watch page did not carry a player
	// response for the requested video ID.
	ErrVideoUnavailable = errors.New("video is unavailable")
	// ErrTranscriptDisabled means the video exposes no caption tracks.
	ErrTranscriptDisabled = errors.New("transcript is disabled on this video")
)

// LanguageUnavailableError reports that the requested caption language does
// not exist for the video, along with the languages that do.
type LanguageUnavailableError struct {
	VideoID   string
	Requested string
	Available []string
}

func (e *LanguageUnavailableError) Error() string {
	return fmt.Sprintf("no %q transcript for video %s (available: %s)",
		e.Requested, e.VideoID, strings.Join(e.Available, ", "))
}
