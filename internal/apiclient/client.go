// HTTP client for the tunebox API, used by the CLI and terminal client.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"tunebox/internal/models"
)

// Client wraps the tunebox HTTP API with typed methods. A bearer token set via
// [Client.SetToken] is attached to every subsequent request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// SetToken attaches a session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

// Session is the authentication payload returned by signup and login.
type Session struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    models.Summary `json:"user"`
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// do performs a JSON round trip. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorMessage extracts the message from an error body, which is {"message"}
// on account routes and {"error"} on catalog routes.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}

// Signup registers a new account and stores the returned session token.
//
// The display name is title-cased before sending, matching what the reference
// web client does on its signup form.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	payload := map[string]string{
		"name":     capitalizeWords(name),
		"email":    email,
		"password": password,
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/signup", payload, &session); err != nil {
		return nil, err
	}

	c.token = session.Token
	return &session, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	payload := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/login", payload, &session); err != nil {
		return nil, err
	}

	c.token = session.Token
	return &session, nil
}

// ChangePassword rotates the account password for the current session.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	payload := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPatch, "/change-password", payload, nil)
}

// UpdateProfile changes the display name for the current session.
func (c *Client) UpdateProfile(ctx context.Context, name string) (models.Summary, error) {
	var resp struct {
		User models.Summary `json:"user"`
	}

	payload := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPatch, "/update-user", payload, &resp); err != nil {
		return models.Summary{}, err
	}

	return resp.User, nil
}

// DeleteAccount permanently removes the current account and clears the token.
func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	payload := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodDelete, "/delete-user", payload, nil); err != nil {
		return err
	}

	c.token = ""
	return nil
}

// ListSongs fetches the aggregated catalog.
func (c *Client) ListSongs(ctx context.Context) ([]models.Song, error) {
	var songs []models.Song
	if err := c.do(ctx, http.MethodGet, "/music", nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

// GetSong fetches a single song by id.
func (c *Client) GetSong(ctx context.Context, id int64) (*models.Song, error) {
	var song models.Song
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/music/%d", id), nil, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

// capitalizeWords upper-cases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
