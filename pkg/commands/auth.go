package commands

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/config"
	"tableflip.dev/habitx/pkg/runner/auth"
	"tableflip.dev/habitx/pkg/session"
)

// authSessions builds the session provider the auth verbs act on.
func authSessions() (session.Provider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Remote() {
		return nil, errors.New("no hosted record store configured, sessions are local only")
	}
	return sessions(cfg)
}

func addLogin(topLevel *cobra.Command) {
	var tokenFile string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in with a session token",
		Example: `
habitx login <token>
habitx login --token-file=token.jwt
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && tokenFile == "" {
				return errors.New("requires a token or --token-file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			if tokenFile != "" {
				b, err := os.ReadFile(tokenFile)
				if err != nil {
					return err
				}
				token = strings.TrimSpace(string(b))
			}

			p, err := authSessions()
			if err != nil {
				return err
			}
			s := auth.Login{
				Token:    token,
				Sessions: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&tokenFile, "token-file", "",
		"Read the session token from a file.")

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "end the current session",
		Example: `
habitx logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := authSessions()
			if err != nil {
				return err
			}
			s := auth.Logout{Sessions: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the current session",
		Example: `
habitx whoami
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			p, err := sessions(cfg)
			if err != nil {
				return err
			}
			s := auth.Whoami{Sessions: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
