// package accounts implements operations on the credential store.
package accounts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"tunebox/internal/auth"
	"tunebox/internal/models"
	"tunebox/internal/repositories"
	"tunebox/internal/shared"
)

// Service performs account operations against the credential store.
//
// Every mutating operation writes through to the store; nothing is idempotent
// except where the precondition already fails. Token verification is the
// transport layer's job — operations here receive an already-verified user id.
type Service struct {
	users  *repositories.UserRepository
	tokens *auth.Issuer
	hasher *auth.Hasher
	logger *log.Logger
}

// ServiceOpts contains dependencies for creating a Service.
type ServiceOpts struct {
	Users  *repositories.UserRepository
	Tokens *auth.Issuer
	Hasher *auth.Hasher
	Logger *log.Logger
}

// NewService creates an account Service with the provided dependencies.
func NewService(opts ServiceOpts) *Service {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Hasher == nil {
		opts.Hasher = auth.NewHasher(10)
	}

	return &Service{
		users:  opts.Users,
		tokens: opts.Tokens,
		hasher: opts.Hasher,
		logger: opts.Logger,
	}
}

// Tokens exposes the token issuer for transport-layer verification.
func (s *Service) Tokens() *auth.Issuer {
	return s.tokens
}

// Register creates a new user and returns its identity summary with a fresh
// session token.
func (s *Service) Register(name, email, password string) (models.Summary, string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return models.Summary{}, "", fmt.Errorf("%w: all fields are required", shared.ErrValidation)
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return models.Summary{}, "", fmt.Errorf("%w: %s", shared.ErrEmailTaken, email)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return models.Summary{}, "", err
	}

	user := models.NewUser(0, email, name, digest)
	if err := s.users.Create(user); err != nil {
		return models.Summary{}, "", err
	}

	token, err := s.tokens.Issue(user.ID(), user.Email())
	if err != nil {
		return models.Summary{}, "", err
	}

	s.logger.Info("user registered", "id", user.ID(), "email", user.Email())
	return user.Summarize(), token, nil
}

// Authenticate checks credentials and returns the identity summary with a
// fresh session token.
func (s *Service) Authenticate(email, password string) (models.Summary, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.Summary{}, "", fmt.Errorf("%w: email and password are required", shared.ErrValidation)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return models.Summary{}, "", err
	}

	if !s.hasher.Compare(user.PasswordHash(), password) {
		return models.Summary{}, "", shared.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID(), user.Email())
	if err != nil {
		return models.Summary{}, "", err
	}

	s.logger.Info("user authenticated", "id", user.ID())
	return user.Summarize(), token, nil
}

// ChangePassword replaces the stored digest after checking the current
// password and the policy for the new one.
//
// A failed policy check never mutates the stored digest.
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: both current and new passwords are required", shared.ErrValidation)
	}

	if err := auth.CheckPolicy(newPassword); err != nil {
		return err
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(user.PasswordHash(), currentPassword) {
		return shared.ErrWrongPassword
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.SetPasswordHash(digest)
	if err := s.users.Update(user); err != nil {
		return err
	}

	s.logger.Info("password changed", "id", user.ID())
	return nil
}

// UpdateProfile mutates the display name and returns the updated summary.
func (s *Service) UpdateProfile(userID, name string) (models.Summary, error) {
	if strings.TrimSpace(name) == "" {
		return models.Summary{}, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return models.Summary{}, err
	}

	user.SetName(name)
	if err := s.users.Update(user); err != nil {
		return models.Summary{}, err
	}

	s.logger.Info("profile updated", "id", user.ID())
	return user.Summarize(), nil
}

// DeleteAccount permanently removes the user after checking the password.
// There is no recovery path.
func (s *Service) DeleteAccount(userID, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required to delete account", shared.ErrValidation)
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(user.PasswordHash(), password) {
		return shared.ErrWrongPassword
	}

	if err := s.users.Delete(user.ID()); err != nil {
		return err
	}

	s.logger.Info("account deleted", "id", user.ID())
	return nil
}

// ListUsers returns identity summaries for all users, digests excluded.
func (s *Service) ListUsers() ([]models.Summary, error) {
	users, err := s.users.List(nil)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.Summary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summarize())
	}

	return summaries, nil
}

// DeleteByID removes a user by id without a password check (admin surface).
func (s *Service) DeleteByID(id string) error {
	return s.users.Delete(id)
}

// DeleteByEmail removes a user by email without a password check (admin surface).
func (s *Service) DeleteByEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", shared.ErrValidation)
	}
	return s.users.DeleteByEmail(email)
}
