// Package session implements the client-side session cookie: a signed
// JWT carrying the remote service's access token and the tenant id,
// valid for the configured TTL. Nothing is persisted server-side, so a
// restart invalidates nothing and an expired cookie is simply rejected.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/labelforge/labelpress/pkg/domain"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 12 * time.Hour

// Config holds session store configuration.
type Config struct {
	// Secret signs the session cookie. Required, never hard-coded.
	Secret []byte
	// TTL bounds the session lifetime (default: DefaultTTL).
	TTL time.Duration
	// Issuer is the issuer claim in the signed cookie.
	Issuer string
}

// Store issues and verifies signed session cookies.
type Store struct {
	config Config
}

// NewStore creates a session store.
func NewStore(config Config) *Store {
	if config.TTL == 0 {
		config.TTL = DefaultTTL
	}
	return &Store{config: config}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.config.TTL
}

// Claims is the signed session payload.
type Claims struct {
	jwt.RegisteredClaims
	AccessToken string `json:"act"`
	TenantID    string `json:"tenant_id"`
}

// Issue signs a session into a cookie value.
func (s *Store) Issue(sess domain.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			Issuer:    s.config.Issuer,
		},
		AccessToken: sess.AccessToken,
		TenantID:    sess.TenantID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.Secret)
}

// Verify parses and verifies a cookie value back into a session.
// Any tampering, expiry, or algorithm substitution yields
// domain.ErrInvalidSession.
func (s *Store) Verify(value string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidSession
		}
		return s.config.Secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidSession
	}

	sess := &domain.Session{
		AccessToken: claims.AccessToken,
		TenantID:    claims.TenantID,
	}
	if !sess.IsValid() {
		return nil, domain.ErrInvalidSession
	}
	return sess, nil
}
