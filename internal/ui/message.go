package ui

import (
	"tunebox/internal/models"
)

// catalogFetchedMsg carries the catalog load result into the update loop.
type catalogFetchedMsg struct {
	songs  []models.Song
	cached bool
	err    error
}

// trackReadyMsg reports that the selected track's media finished loading.
type trackReadyMsg struct {
	duration float64
}

// tickMsg drives the playhead forward once per second while playing.
type tickMsg struct{}

// likedToggledMsg carries the result of a like/unlike action.
type likedToggledMsg struct {
	liked bool
	err   error
}
