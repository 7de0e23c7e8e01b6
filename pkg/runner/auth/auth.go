// Package auth provides the session runners: login, logout, whoami.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/habitx/pkg/session"
)

// Login persists an externally issued session token.
type Login struct {
	Token string

	Sessions session.Provider
}

func (n *Login) Do(ctx context.Context) error {
	if n.Sessions == nil {
		return errors.New("can not login, no session provider")
	}
	if err := n.Sessions.SignIn(ctx, n.Token); err != nil {
		return err
	}
	s, err := n.Sessions.Current()
	if err != nil {
		return err
	}
	if s == nil {
		return errors.New("signed in but no session detected")
	}
	fmt.Printf("signed in as %s\n", who(s))
	return nil
}

// Logout ends the persisted session.
type Logout struct {
	Sessions session.Provider
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Sessions == nil {
		return errors.New("can not logout, no session provider")
	}
	if err := n.Sessions.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

// Whoami prints the current session, if any.
type Whoami struct {
	Sessions session.Provider
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Sessions == nil {
		return errors.New("no session provider")
	}
	s, err := n.Sessions.Current()
	if err != nil {
		return err
	}
	if s == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("not signed in")
		return nil
	}
	fmt.Println(who(s))
	return nil
}

func who(s *session.Session) string {
	if s.Email != "" {
		return s.Email
	}
	return s.Owner
}
