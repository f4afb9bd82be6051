package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"tunebox/internal/accounts"
	"tunebox/internal/catalog"
	"tunebox/internal/shared"
)

// writeJSON serializes v with the given status. Serialization failures are
// logged by the caller; headers are already out by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation),
		errors.Is(err, shared.ErrWeakPassword),
		errors.Is(err, shared.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrWrongPassword),
		errors.Is(err, shared.ErrInvalidToken),
		errors.Is(err, shared.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AccountHandler serves the account routes. Error bodies are a single
// {"message": ...} object; internals never cross the boundary.
type AccountHandler struct {
	accounts *accounts.Service
	logger   *log.Logger
}

// NewAccountHandler creates an AccountHandler backed by the account service.
func NewAccountHandler(svc *accounts.Service, logger *log.Logger) *AccountHandler {
	return &AccountHandler{accounts: svc, logger: logger}
}

// Routes implements [Handler].
func (h *AccountHandler) Routes() []string {
	return []string{
		"/signup",
		"/login",
		"/change-password",
		"/update-user",
		"/delete-user",
		"/users",
		"/users/{id}",
	}
}

// ServeHTTP dispatches account requests by method and path.
func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/signup" && r.Method == http.MethodPost:
		h.signup(w, r)
	case path == "/signup" && r.Method == http.MethodDelete:
		h.deleteByEmail(w, r)
	case path == "/login" && r.Method == http.MethodPost:
		h.login(w, r)
	case path == "/change-password" && r.Method == http.MethodPatch:
		h.changePassword(w, r)
	case path == "/update-user" && r.Method == http.MethodPatch:
		h.updateUser(w, r)
	case path == "/delete-user" && r.Method == http.MethodDelete:
		h.deleteUser(w, r)
	case path == "/users" && r.Method == http.MethodGet:
		h.listUsers(w, r)
	case strings.HasPrefix(path, "/users/") && r.Method == http.MethodDelete:
		h.deleteByID(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
	}
}

// fail writes the error body for account routes and logs the cause.
func (h *AccountHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, statusFor(err), map[string]string{"message": err.Error()})
}

func (h *AccountHandler) signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, shared.ErrValidation)
		return
	}

	summary, token, err := h.accounts.Register(body.Name, body.Email, body.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"token":   token,
		"user":    summary,
	})
}

func (h *AccountHandler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, shared.ErrValidation)
		return
	}

	summary, token, err := h.accounts.Authenticate(body.Email, body.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    summary,
	})
}

func (h *AccountHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		h.fail(w, r, shared.ErrNotAuthenticated)
		return
	}

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, shared.ErrValidation)
		return
	}

	if err := h.accounts.ChangePassword(claims.UserID, body.CurrentPassword, body.NewPassword); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *AccountHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		h.fail(w, r, shared.ErrNotAuthenticated)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, shared.ErrValidation)
		return
	}

	summary, err := h.accounts.UpdateProfile(claims.UserID, body.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    summary,
	})
}

func (h *AccountHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		h.fail(w, r, shared.ErrNotAuthenticated)
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, shared.ErrValidation)
		return
	}

	if err := h.accounts.DeleteAccount(claims.UserID, body.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (h *AccountHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.accounts.ListUsers()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": summaries})
}

func (h *AccountHandler) deleteByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		id = strings.TrimPrefix(r.URL.Path, "/users/")
	}

	if err := h.accounts.DeleteByID(id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (h *AccountHandler) deleteByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	if err := h.accounts.DeleteByEmail(email); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// MusicHandler proxies the catalog aggregator. Error bodies are a single
// {"error": ...} object with a fixed message per route.
type MusicHandler struct {
	catalog catalog.Service
	logger  *log.Logger
}

// NewMusicHandler creates a MusicHandler backed by the given catalog service.
func NewMusicHandler(svc catalog.Service, logger *log.Logger) *MusicHandler {
	return &MusicHandler{catalog: svc, logger: logger}
}

// Routes implements [Handler].
func (h *MusicHandler) Routes() []string {
	return []string{"/music", "/music/{id}"}
}

// ServeHTTP dispatches catalog requests. Both routes are unauthenticated reads.
func (h *MusicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	if r.URL.Path == "/music" {
		h.listSongs(w, r)
		return
	}

	h.getSong(w, r)
}

func (h *MusicHandler) listSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.catalog.ListCatalog(r.Context())
	if err != nil {
		h.logger.Error("catalog aggregation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load songs"})
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

func (h *MusicHandler) getSong(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	if raw == "" {
		raw = strings.TrimPrefix(r.URL.Path, "/music/")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid song id"})
		return
	}

	song, err := h.catalog.GetSong(r.Context(), id)
	if err != nil {
		h.logger.Error("song fetch failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load song"})
		return
	}

	writeJSON(w, http.StatusOK, song)
}
