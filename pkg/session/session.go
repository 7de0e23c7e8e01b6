// Package session abstracts the identity provider the dashboard associates
// its data with. The provider is opaque: it issues tokens, and the dashboard
// only needs the owner identity and expiry carried inside them.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies the signed-in account.
type Session struct {
	Owner     string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session's token has lapsed. Sessions without
// an expiry never expire.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Provider is the session collaborator contract. Current returns nil without
// error when nobody is signed in. OnChange registers a single subscriber and
// returns its unsubscribe handle; the handle is safe to call once.
type Provider interface {
	Current() (*Session, error)
	OnChange(fn func(*Session)) (func(), error)
	SignIn(ctx context.Context, token string) error
	SignOut(ctx context.Context) error
}

// ErrNotConfigured is returned when the provider has nowhere to keep state.
var ErrNotConfigured = errors.New("session: provider not configured")

// FromToken parses an externally issued JWT into a Session. The token is not
// signature-checked here; the record store verifies it on every call, the
// dashboard only reads the identity claims out of it.
func FromToken(token string) (*Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}
	s := &Session{Token: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.Owner = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	if s.Owner == "" {
		return nil, errors.New("session: token has no subject")
	}
	return s, nil
}

// Static is the fixed local-mode session provider: always signed in as the
// device owner, never changes.
type Static struct {
	Owner string
}

var _ Provider = (*Static)(nil)

func (s *Static) Current() (*Session, error) {
	owner := s.Owner
	if owner == "" {
		owner = "local"
	}
	return &Session{Owner: owner}, nil
}

func (s *Static) OnChange(fn func(*Session)) (func(), error) {
	return func() {}, nil
}

func (s *Static) SignIn(ctx context.Context, token string) error {
	return nil
}

func (s *Static) SignOut(ctx context.Context) error {
	return errors.New("session: local sessions cannot sign out")
}
