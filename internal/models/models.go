package models

import (
	"fmt"
	"strings"
	"time"
)

// Model defines the base interface for all persistent models in the playlist service.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// User is a registered account with a salted password digest.
//
// The digest is write-only from the API's perspective: it never appears in a
// [Summary] or any serialized response.
type User struct {
	id           string
	sequence     int
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a User with the given sequence, email, display name and password digest.
func NewUser(sequence int, email, name, passwordHash string) *User {
	now := time.Now()
	return &User{
		sequence:     sequence,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Sequence() int        { return u.sequence }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id string)             { u.id = id }
func (u *User) SetName(name string)         { u.name = name }
func (u *User) SetPasswordHash(hash string) { u.passwordHash = hash }
func (u *User) SetCreatedAt(t time.Time)    { u.createdAt = t }
func (u *User) SetUpdatedAt(t time.Time)    { u.updatedAt = t }

// Validate checks required fields. Email matching is exact (case-sensitive).
func (u *User) Validate() error {
	if strings.TrimSpace(u.name) == "" {
		return fmt.Errorf("user name is required")
	}
	if strings.TrimSpace(u.email) == "" {
		return fmt.Errorf("user email is required")
	}
	if u.passwordHash == "" {
		return fmt.Errorf("user password digest is required")
	}
	return nil
}

// Summary is the public identity projection returned by account endpoints.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summarize returns the user's public identity projection.
func (u *User) Summarize() Summary {
	return Summary{ID: u.id, Name: u.name, Email: u.email}
}

// Song is the normalized catalog entry served to clients.
//
// All fields are projections of the provider's richer track record; the ID is
// the provider's own identifier and is stable across requests.
type Song struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Image   string `json:"image"`
	Preview string `json:"preview"`
}
