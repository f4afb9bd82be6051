package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"tunebox/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item], with a liked marker
// in the description.
type songItem struct {
	song  models.Song
	liked bool
}

// FilterValue combines title and artist so the list's built-in filter matches
// either field.
func (i songItem) FilterValue() string { return i.song.Title + " " + i.song.Artist }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	if i.liked {
		return fmt.Sprintf("%s ♥", i.song.Artist)
	}
	return i.song.Artist
}
