package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"almocoprodigi/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

type jwtSession struct {
	secret []byte
}

// NewJWTSession returns an issuer/verifier pair backed by HS256 JWTs signed
// with the given secret. The token carries an admin claim and a jti.
func NewJWTSession(secret string) *jwtSession {
	return &jwtSession{secret: []byte(secret)}
}

var _ domain.SessionIssuer = (*jwtSession)(nil)
var _ domain.SessionVerifier = (*jwtSession)(nil)

func (s *jwtSession) Issue(expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Admin: true,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSession) Verify(tokenString string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || !claims.Admin {
		return fmt.Errorf("session token is not an admin session")
	}
	return nil
}

// CheckPassphrase compares the submitted passphrase against the configured
// admin password in constant time. The secret is a single shared operational
// password, so there is no per-user hash to compare against.
func CheckPassphrase(configured, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}
