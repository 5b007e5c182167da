// Package auth inspects the access token the client was configured with.
// Tokens are not verified here: the API does that on every call. Reading
// the claims only gives the client its user identity and an expiry hint.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed access token")

// Claims are the fields the API puts into its access tokens.
type Claims struct {
	jwt.RegisteredClaims
	ClientID string `json:"ci"`
	UserID   string `json:"ui"`
}

// Session is what the client knows about the authenticated user.
type Session struct {
	UserID    string
	ClientID  string
	ExpiresAt time.Time
}

// Expired reports whether the session has a known expiry before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ParseSession reads the claims of a JWT access token without checking its
// signature. The user id falls back to the "sub" claim.
func ParseSession(token string) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	s := Session{UserID: claims.UserID, ClientID: claims.ClientID}
	if s.UserID == "" {
		s.UserID = claims.Subject
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
