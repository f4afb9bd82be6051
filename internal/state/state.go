package state

import (
	"encoding/json"
	"fmt"
	"strings"

	"tunebox/internal/models"
	"tunebox/internal/shared"
)

// State exposes the client's persistent session, liked-song set, and catalog
// cache over an injectable [Store].
type State struct {
	store Store
}

// New wraps a Store in the client state contract.
func New(store Store) *State {
	return &State{store: store}
}

// SaveSession persists the token and identity written at login or signup.
func (s *State) SaveSession(token string, user models.Summary) error {
	if err := s.store.Set(KeyAuthToken, []byte(fmt.Sprintf("%q", token))); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return s.store.Set(KeyUser, data)
}

// Token returns the stored session token, if any.
func (s *State) Token() (string, bool) {
	data, ok := s.store.Get(KeyAuthToken)
	if !ok {
		return "", false
	}

	var token string
	if err := json.Unmarshal(data, &token); err != nil || token == "" {
		return "", false
	}

	return token, true
}

// User returns the stored identity summary, if any.
func (s *State) User() (models.Summary, bool) {
	data, ok := s.store.Get(KeyUser)
	if !ok {
		return models.Summary{}, false
	}

	var user models.Summary
	if err := json.Unmarshal(data, &user); err != nil {
		return models.Summary{}, false
	}

	return user, true
}

// Authenticated reports whether a session token is present.
func (s *State) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Logout discards the token and identity. Liked songs survive a logout and
// reappear on the next login.
func (s *State) Logout() error {
	if err := s.store.Delete(KeyAuthToken); err != nil {
		return err
	}
	return s.store.Delete(KeyUser)
}

// ClearAccount wipes everything tied to the account after a server-side
// deletion, liked songs included.
func (s *State) ClearAccount() error {
	if err := s.Logout(); err != nil {
		return err
	}
	return s.store.Delete(KeyLikedSongs)
}

// CachedCatalog returns the persisted catalog, if one was saved. There is no
// TTL: the cache is reused until explicitly cleared.
func (s *State) CachedCatalog() ([]models.Song, bool) {
	data, ok := s.store.Get(KeyMusicList)
	if !ok {
		return nil, false
	}

	var songs []models.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, false
	}

	return songs, true
}

// SaveCatalog persists a fetched catalog for reuse on later runs.
func (s *State) SaveCatalog(songs []models.Song) error {
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return s.store.Set(KeyMusicList, data)
}

// ClearCatalog drops the cached catalog.
func (s *State) ClearCatalog() error {
	return s.store.Delete(KeyMusicList)
}

// LikedSongs returns the liked set in like order.
func (s *State) LikedSongs() []models.Song {
	data, ok := s.store.Get(KeyLikedSongs)
	if !ok {
		return nil
	}

	var songs []models.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil
	}

	return songs
}

// IsLiked reports whether the song id is in the liked set.
func (s *State) IsLiked(id int64) bool {
	for _, song := range s.LikedSongs() {
		if song.ID == id {
			return true
		}
	}
	return false
}

// ToggleLiked adds the song to the liked set, or removes it when already
// present. Toggling twice restores the original set. Requires a session.
func (s *State) ToggleLiked(song models.Song) (bool, error) {
	if !s.Authenticated() {
		return false, shared.ErrNotAuthenticated
	}

	songs := s.LikedSongs()
	for i, liked := range songs {
		if liked.ID == song.ID {
			songs = append(songs[:i], songs[i+1:]...)
			return false, s.saveLiked(songs)
		}
	}

	songs = append(songs, song)
	return true, s.saveLiked(songs)
}

func (s *State) saveLiked(songs []models.Song) error {
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to encode liked songs: %w", err)
	}
	return s.store.Set(KeyLikedSongs, data)
}

// FilterSongs returns songs whose title or artist contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterSongs(songs []models.Song, query string) []models.Song {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return songs
	}

	var matched []models.Song
	for _, song := range songs {
		if strings.Contains(strings.ToLower(song.Title), query) ||
			strings.Contains(strings.ToLower(song.Artist), query) {
			matched = append(matched, song)
		}
	}

	return matched
}
