package auth

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"tunebox/internal/shared"
)

// Password policy: at least 8 characters, at least one letter, and at least
// one digit or symbol.
var (
	policyLength = regexp.MustCompile(`^.{8,}$`)
	policyLetter = regexp.MustCompile(`[A-Za-z]`)
	policyExtra  = regexp.MustCompile(`[\d\W]`)
)

// Hasher produces and checks bcrypt password digests with a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. Costs outside bcrypt's valid range fall back to 10.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 10
	}
	return &Hasher{cost: cost}
}

// Hash returns the one-way salted digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether password matches the stored digest.
func (h *Hasher) Compare(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// CheckPolicy validates a candidate password against the policy.
//
// Returns [shared.ErrWeakPassword] (wrapped) naming the failed requirement.
func CheckPolicy(password string) error {
	if !policyLength.MatchString(password) {
		return fmt.Errorf("%w: must be at least 8 characters", shared.ErrWeakPassword)
	}
	if !policyLetter.MatchString(password) {
		return fmt.Errorf("%w: must include at least 1 letter", shared.ErrWeakPassword)
	}
	if !policyExtra.MatchString(password) {
		return fmt.Errorf("%w: must include at least 1 number or special character", shared.ErrWeakPassword)
	}
	return nil
}
