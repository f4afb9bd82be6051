package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tunebox/internal/models"
)

func TestSignup(t *testing.T) {
	t.Run("StoresTokenAndCapitalizesName", func(t *testing.T) {
		var received map[string]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/signup" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&received)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "User created successfully",
				"token":   "session-token",
				"user":    models.Summary{ID: "user-1", Name: received["name"], Email: received["email"]},
			})
		}))
		defer ts.Close()

		client := NewClient(ts.URL, nil)
		session, err := client.Signup(context.Background(), "jane q doe", "jane@example.com", "password1")
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}

		if received["name"] != "Jane Q Doe" {
			t.Errorf("expected capitalized name, sent %q", received["name"])
		}
		if session.Token != "session-token" {
			t.Errorf("unexpected token %q", session.Token)
		}
		if client.Token() != "session-token" {
			t.Error("token not stored on client")
		}
	})

	t.Run("Conflict", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
		}))
		defer ts.Close()

		client := NewClient(ts.URL, nil)
		_, err := client.Signup(context.Background(), "Jane", "jane@example.com", "password1")

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "user already exists" {
			t.Errorf("unexpected error: %v", apiErr)
		}
	})
}

func TestLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"token":   "fresh-token",
			"user":    models.Summary{ID: "user-1", Name: "Jane", Email: "jane@example.com"},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil)
	session, err := client.Login(context.Background(), "jane@example.com", "password1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if session.User.ID != "user-1" {
		t.Errorf("unexpected user: %+v", session.User)
	}
	if client.Token() != "fresh-token" {
		t.Error("token not stored on client")
	}
}

func TestAuthorizedRequests(t *testing.T) {
	t.Run("BearerHeader", func(t *testing.T) {
		var header string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"message": "Password updated successfully"})
		}))
		defer ts.Close()

		client := NewClient(ts.URL, nil)
		client.SetToken("session-token")

		if err := client.ChangePassword(context.Background(), "old-pass1", "new-pass2"); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}
		if header != "Bearer session-token" {
			t.Errorf("unexpected Authorization header %q", header)
		}
	})

	t.Run("DeleteAccountClearsToken", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
		}))
		defer ts.Close()

		client := NewClient(ts.URL, nil)
		client.SetToken("session-token")

		if err := client.DeleteAccount(context.Background(), "password1"); err != nil {
			t.Fatalf("DeleteAccount failed: %v", err)
		}
		if client.Token() != "" {
			t.Error("token survived account deletion")
		}
	})
}

func TestMusicEndpoints(t *testing.T) {
	songs := []models.Song{
		{ID: 1, Title: "One More Time", Artist: "Daft Punk"},
		{ID: 2, Title: "Instant Crush", Artist: "Daft Punk"},
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/music":
			json.NewEncoder(w).Encode(songs)
		case "/music/2":
			json.NewEncoder(w).Encode(songs[1])
		default:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load song"})
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil)

	t.Run("ListSongs", func(t *testing.T) {
		got, err := client.ListSongs(context.Background())
		if err != nil {
			t.Fatalf("ListSongs failed: %v", err)
		}
		if len(got) != 2 || got[0].Title != "One More Time" {
			t.Errorf("unexpected songs: %+v", got)
		}
	})

	t.Run("GetSong", func(t *testing.T) {
		got, err := client.GetSong(context.Background(), 2)
		if err != nil {
			t.Fatalf("GetSong failed: %v", err)
		}
		if got.Title != "Instant Crush" {
			t.Errorf("unexpected song: %+v", got)
		}
	})

	t.Run("ErrorBody", func(t *testing.T) {
		_, err := client.GetSong(context.Background(), 99)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != "Failed to load song" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	})
}

func TestCapitalizeWords(t *testing.T) {
	cases := map[string]string{
		"jane doe":   "Jane Doe",
		"  spaced  ": "Spaced",
		"ALREADY":    "ALREADY",
		"":           "",
	}

	for input, want := range cases {
		if got := capitalizeWords(input); got != want {
			t.Errorf("capitalizeWords(%q) = %q, want %q", input, got, want)
		}
	}
}
