package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// TokenFile persists the session token on disk and notifies a subscriber
// when another process signs in or out.
type TokenFile struct {
	path string
}

var _ Provider = (*TokenFile)(nil)

// NewTokenFile builds a provider storing its token at path.
func NewTokenFile(path string) (*TokenFile, error) {
	if path == "" {
		return nil, ErrNotConfigured
	}
	return &TokenFile{path: path}, nil
}

// Current reads the persisted session. A missing file or an expired token
// both read as signed out.
func (t *TokenFile) Current() (*Session, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil, nil
	}
	s, err := FromToken(token)
	if err != nil {
		return nil, err
	}
	if s.Expired() {
		return nil, nil
	}
	return s, nil
}

// SignIn validates and persists the provided token.
func (t *TokenFile) SignIn(ctx context.Context, token string) error {
	s, err := FromToken(strings.TrimSpace(token))
	if err != nil {
		return err
	}
	if s.Expired() {
		return errors.New("session: token already expired")
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	// Write-then-rename so a watcher never reads a half-written token.
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(s.Token+"\n"), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, t.path)
}

// SignOut removes the persisted session. Signing out twice is fine.
func (t *TokenFile) SignOut(ctx context.Context) error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// OnChange watches the session file and invokes fn with the new session (nil
// on sign-out) whenever it changes. The returned unsubscribe handle stops the
// watch; calling it more than once is harmless.
func (t *TokenFile) OnChange(fn func(*Session)) (func(), error) {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			_ = watcher.Close()
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != filepath.Clean(t.path) {
					continue
				}
				s, err := t.Current()
				if err != nil {
					continue
				}
				fn(s)
			}
		}
	}()

	return unsubscribe, nil
}
