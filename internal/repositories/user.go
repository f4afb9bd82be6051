package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tunebox/internal/models"
	"tunebox/internal/shared"
)

// UserRepository implements [models.Repository] for [models.User] persistence.
//
// Deletes are permanent: the service has no soft-delete or recovery path for
// accounts. Email uniqueness is enforced by the schema and surfaced as
// [shared.ErrEmailTaken].
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user into the database with generated ID and sequence
func (r *UserRepository) Create(user *models.User) error {
	sequence, err := NextSequence(r.db, "users")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	user.SetID(id)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO users (id, sequence, email, name, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, user.Email(), user.Name(), user.PasswordHash(), user.CreatedAt(), user.UpdatedAt())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s", shared.ErrEmailTaken, user.Email())
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(id string) (*models.User, error) {
	query := `
		SELECT id, sequence, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a user by exact email match (case-sensitive)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, sequence, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = ?
	`

	return r.scanOne(r.db.QueryRow(query, email))
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var (
		userID       string
		sequence     int
		email        string
		name         string
		passwordHash string
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := row.Scan(&userID, &sequence, &email, &name, &passwordHash, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user := models.NewUser(sequence, email, name, passwordHash)
	user.SetID(userID)
	user.SetCreatedAt(createdAt)
	user.SetUpdatedAt(updatedAt)

	return user, nil
}

// Update modifies an existing user's mutable fields (name and password digest)
func (r *UserRepository) Update(user *models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	user.SetUpdatedAt(now)

	query := `
		UPDATE users
		SET name = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, user.Name(), user.PasswordHash(), now, user.ID())
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrUserNotFound, user.ID())
	}

	return nil
}

// Delete permanently removes a user by ID. There is no recovery path.
func (r *UserRepository) Delete(id string) error {
	query := `
		DELETE FROM users
		WHERE id = ?
	`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
	}

	return nil
}

// DeleteByEmail permanently removes a user by email
func (r *UserRepository) DeleteByEmail(email string) error {
	user, err := r.GetByEmail(email)
	if err != nil {
		return err
	}
	return r.Delete(user.ID())
}

// List retrieves all users matching the given criteria
func (r *UserRepository) List(criteria map[string]any) ([]*models.User, error) {
	query := `
		SELECT id, sequence, email, name, password_hash, created_at, updated_at
		FROM users
	`

	args := []any{}

	if email, ok := criteria["email"].(string); ok && email != "" {
		query += " WHERE email = ?"
		args = append(args, email)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var (
			userID       string
			sequence     int
			email        string
			name         string
			passwordHash string
			createdAt    time.Time
			updatedAt    time.Time
		)

		err := rows.Scan(&userID, &sequence, &email, &name, &passwordHash, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		user := models.NewUser(sequence, email, name, passwordHash)
		user.SetID(userID)
		user.SetCreatedAt(createdAt)
		user.SetUpdatedAt(updatedAt)

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return users, nil
}
