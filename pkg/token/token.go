// Package token issues and verifies the signed session tokens handed to
// browser clients after login.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mentorhub/backend/domain"
)

// Issuer signs short-lived HS256 tokens carrying the user identity.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewIssuer builds an Issuer. A non-positive ttl defaults to 24 hours.
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue signs a token for the given session.
func (i *Issuer) Issue(session *domain.Session) (string, error) {
	if session == nil {
		return "", fmt.Errorf("token: nil session")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   session.UserID,
		"user_type": string(session.UserType),
		"iss":       i.issuer,
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}
