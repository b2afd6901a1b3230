package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure signal for token verification. It
// covers malformed tokens, signature mismatches and expiry alike so that
// callers cannot distinguish which occurred.
var ErrInvalidToken = errors.New("invalid token")

// TokenCodec issues and verifies signed session tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec over a symmetric secret.
func NewTokenCodec(secret string, ttlHours int) *TokenCodec {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &TokenCodec{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

// SessionClaims describes the signed token payload.
type SessionClaims struct {
	CrewID  string `json:"crew_id,omitempty"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// SubjectID returns the principal identifier embedded in the token.
func (c *SessionClaims) SubjectID() string {
	return c.Subject
}

// TTL reports the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue builds and signs a token for the subject.
func (tc *TokenCodec) Issue(subjectID, crewID string, isAdmin bool) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tc.ttl)
	claims := &SessionClaims{
		CrewID:  crewID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the signature and expiry and returns the claims. Every
// failure maps to ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
