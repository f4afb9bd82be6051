// Session token issuance and verification.
//
// Tokens are stateless HS256 JWTs: the server keeps no session table, logout is
// purely a client-side discard, and expiry requires re-authentication. The
// trade-off is non-revocability inside the validity window.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"tunebox/internal/shared"
)

// Claims embeds the registered claims plus the identity the token asserts.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Issuer signs and verifies session tokens with a server-held secret.
type Issuer struct {
	secret   []byte
	validity time.Duration
}

// NewIssuer creates an Issuer. A zero or negative validity falls back to 7 days.
func NewIssuer(secret []byte, validity time.Duration) *Issuer {
	if validity <= 0 {
		validity = 7 * 24 * time.Hour
	}
	return &Issuer{secret: secret, validity: validity}
}

// Issue produces a signed token embedding the user's id and email.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		UserID: userID,
		Email:  email,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token and returns its claims.
//
// Returns [shared.ErrInvalidToken] (wrapped) for expired, malformed, or
// wrongly-signed tokens.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, shared.ErrInvalidToken
	}

	return claims, nil
}
