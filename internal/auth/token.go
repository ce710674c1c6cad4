package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
	Persisted bool
}

// TokenManager issues signed JWTs for users who logged in.
type TokenManager struct {
	secret     []byte
	issuer     string
	ttl        time.Duration
	persistTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a manager. persistTTL applies when the user asked to stay logged in.
func NewTokenManager(secret, issuer string, ttl, persistTTL time.Duration) *TokenManager {
	if persistTTL < ttl {
		persistTTL = ttl
	}
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		ttl:        ttl,
		persistTTL: persistTTL,
		now:        time.Now,
	}
}

// Generate issues a signed JWT whose subject is the normalized username.
func (t *TokenManager) Generate(username string, keepLoggedIn bool) (Token, error) {
	now := t.now()
	ttl := t.ttl
	if keepLoggedIn {
		ttl = t.persistTTL
	}
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"iss":     t.issuer,
		"sub":     username,
		"persist": keepLoggedIn,
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ExpiresAt: expiresAt, Persisted: keepLoggedIn}, nil
}

// Parse verifies a token issued by this manager and returns its subject.
func (t *TokenManager) Parse(value string) (string, error) {
	parsed, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("token has no subject")
	}
	return subject, nil
}
