package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub}
	if email != "" {
		claims["email"] = email
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestFromTokenReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s, err := FromToken(testToken(t, "user-1", "u@example.com", exp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Owner != "user-1" || s.Email != "u@example.com" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if s.Expired() {
		t.Fatalf("expected live session")
	}
}

func TestFromTokenRequiresSubject(t *testing.T) {
	if _, err := FromToken(testToken(t, "", "", time.Time{})); err == nil {
		t.Fatalf("expected error for missing subject")
	}
}

func TestFromTokenGarbage(t *testing.T) {
	if _, err := FromToken("not-a-jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jwt")
	p, err := NewTokenFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s, err := p.Current(); err != nil || s != nil {
		t.Fatalf("expected signed out, got %+v err %v", s, err)
	}

	token := testToken(t, "user-1", "", time.Now().Add(time.Hour))
	if err := p.SignIn(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := p.Current()
	if err != nil || s == nil || s.Owner != "user-1" {
		t.Fatalf("expected user-1, got %+v err %v", s, err)
	}

	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := p.Current(); s != nil {
		t.Fatalf("expected signed out after sign-out, got %+v", s)
	}
	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("expected repeated sign-out to no-op, got %v", err)
	}
}

func TestTokenFileExpiredReadsSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jwt")
	p, _ := NewTokenFile(path)
	if err := p.SignIn(context.Background(), testToken(t, "user-1", "", time.Now().Add(-time.Hour))); err == nil {
		t.Fatalf("expected sign-in with expired token to fail")
	}
}

func TestTokenFileOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jwt")
	p, _ := NewTokenFile(path)

	got := make(chan *Session, 4)
	unsubscribe, err := p.OnChange(func(s *Session) { got <- s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer unsubscribe()

	if err := p.SignIn(context.Background(), testToken(t, "user-1", "", time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case s := <-got:
		if s == nil || s.Owner != "user-1" {
			t.Fatalf("unexpected change payload: %+v", s)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for change notification")
	}

	unsubscribe()
	unsubscribe() // double unsubscribe must be safe
}

func TestStaticProvider(t *testing.T) {
	p := &Static{}
	s, err := p.Current()
	if err != nil || s.Owner != "local" {
		t.Fatalf("expected local owner, got %+v err %v", s, err)
	}
	if err := p.SignOut(context.Background()); err == nil {
		t.Fatalf("expected sign-out rejection for local sessions")
	}
}
