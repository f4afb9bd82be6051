package state

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"tunebox/internal/models"
	"tunebox/internal/shared"
)

func testUser() models.Summary {
	return models.Summary{ID: "user-1", Name: "Test User", Email: "test@example.com"}
}

func testSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "One More Time", Artist: "Daft Punk"},
		{ID: 2, Title: "Instant Crush", Artist: "Daft Punk"},
		{ID: 3, Title: "Midnight City", Artist: "M83"},
	}
}

func TestFileStore(t *testing.T) {
	t.Run("PersistsAcrossReopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "tunebox.json")

		store, err := OpenFileStore(path)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		if err := store.Set(KeyAuthToken, []byte(`"session-token"`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		reopened, err := OpenFileStore(path)
		if err != nil {
			t.Fatalf("failed to reopen store: %v", err)
		}

		value, ok := reopened.Get(KeyAuthToken)
		if !ok || string(value) != `"session-token"` {
			t.Errorf("expected persisted token, got %q (present=%v)", value, ok)
		}
	})

	t.Run("DeleteMissingKey", func(t *testing.T) {
		store, err := OpenFileStore(filepath.Join(t.TempDir(), "tunebox.json"))
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}

		if err := store.Delete("nonexistent"); err != nil {
			t.Errorf("deleting a missing key should be a no-op, got %v", err)
		}
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("SaveAndRead", func(t *testing.T) {
		s := New(NewMemoryStore())

		if s.Authenticated() {
			t.Error("fresh state reports authenticated")
		}

		if err := s.SaveSession("session-token", testUser()); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		token, ok := s.Token()
		if !ok || token != "session-token" {
			t.Errorf("expected stored token, got %q (present=%v)", token, ok)
		}

		user, ok := s.User()
		if !ok || user.Email != "test@example.com" {
			t.Errorf("expected stored user, got %+v (present=%v)", user, ok)
		}
	})

	t.Run("LogoutKeepsLikedSongs", func(t *testing.T) {
		s := New(NewMemoryStore())

		if err := s.SaveSession("session-token", testUser()); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
		if _, err := s.ToggleLiked(testSongs()[0]); err != nil {
			t.Fatalf("ToggleLiked failed: %v", err)
		}

		if err := s.Logout(); err != nil {
			t.Fatalf("Logout failed: %v", err)
		}

		if s.Authenticated() {
			t.Error("still authenticated after logout")
		}
		if _, ok := s.User(); ok {
			t.Error("user survived logout")
		}
		if len(s.LikedSongs()) != 1 {
			t.Error("liked songs lost on logout")
		}
	})

	t.Run("ClearAccountWipesLikedSongs", func(t *testing.T) {
		s := New(NewMemoryStore())

		if err := s.SaveSession("session-token", testUser()); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
		if _, err := s.ToggleLiked(testSongs()[0]); err != nil {
			t.Fatalf("ToggleLiked failed: %v", err)
		}

		if err := s.ClearAccount(); err != nil {
			t.Fatalf("ClearAccount failed: %v", err)
		}

		if s.Authenticated() || len(s.LikedSongs()) != 0 {
			t.Error("account state survived deletion")
		}
	})
}

func TestCatalogCache(t *testing.T) {
	s := New(NewMemoryStore())

	if _, ok := s.CachedCatalog(); ok {
		t.Error("fresh state reports a cached catalog")
	}

	songs := testSongs()
	if err := s.SaveCatalog(songs); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	cached, ok := s.CachedCatalog()
	if !ok || !reflect.DeepEqual(cached, songs) {
		t.Errorf("cached catalog differs: %+v", cached)
	}

	if err := s.ClearCatalog(); err != nil {
		t.Fatalf("ClearCatalog failed: %v", err)
	}
	if _, ok := s.CachedCatalog(); ok {
		t.Error("catalog survived ClearCatalog")
	}
}

func TestToggleLiked(t *testing.T) {
	t.Run("RequiresSession", func(t *testing.T) {
		s := New(NewMemoryStore())

		if _, err := s.ToggleLiked(testSongs()[0]); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("Involution", func(t *testing.T) {
		s := New(NewMemoryStore())
		if err := s.SaveSession("session-token", testUser()); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		song := testSongs()[0]

		liked, err := s.ToggleLiked(song)
		if err != nil || !liked {
			t.Fatalf("first toggle: liked=%v err=%v", liked, err)
		}
		if !s.IsLiked(song.ID) {
			t.Error("song not liked after first toggle")
		}

		liked, err = s.ToggleLiked(song)
		if err != nil || liked {
			t.Fatalf("second toggle: liked=%v err=%v", liked, err)
		}
		if s.IsLiked(song.ID) || len(s.LikedSongs()) != 0 {
			t.Error("double toggle did not restore the original set")
		}
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		s := New(NewMemoryStore())
		if err := s.SaveSession("session-token", testUser()); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		songs := testSongs()
		for _, song := range songs {
			if _, err := s.ToggleLiked(song); err != nil {
				t.Fatalf("ToggleLiked failed: %v", err)
			}
		}

		// Unlike the middle song; the others keep their order.
		if _, err := s.ToggleLiked(songs[1]); err != nil {
			t.Fatalf("ToggleLiked failed: %v", err)
		}

		liked := s.LikedSongs()
		if len(liked) != 2 || liked[0].ID != 1 || liked[1].ID != 3 {
			t.Errorf("unexpected liked set: %+v", liked)
		}
	})
}

func TestFilterSongs(t *testing.T) {
	songs := testSongs()

	t.Run("EmptyQuery", func(t *testing.T) {
		if got := FilterSongs(songs, "  "); !reflect.DeepEqual(got, songs) {
			t.Errorf("empty query altered the list: %+v", got)
		}
	})

	t.Run("MatchesTitle", func(t *testing.T) {
		got := FilterSongs(songs, "CRUSH")
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("unexpected matches: %+v", got)
		}
	})

	t.Run("MatchesArtist", func(t *testing.T) {
		got := FilterSongs(songs, "daft")
		if len(got) != 2 {
			t.Errorf("expected 2 matches, got %+v", got)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		if got := FilterSongs(songs, "zzz"); len(got) != 0 {
			t.Errorf("expected no matches, got %+v", got)
		}
	})
}
