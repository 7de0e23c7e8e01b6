package commands

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"tableflip.dev/habitx/pkg/config"
	"tableflip.dev/habitx/pkg/insight"
	"tableflip.dev/habitx/pkg/remote"
	"tableflip.dev/habitx/pkg/session"
	"tableflip.dev/habitx/pkg/tracker"
)

// logger is verbose only when HABITX_DEBUG is set; the CLI output itself
// goes through the printers, not the log.
func logger() *zap.Logger {
	if os.Getenv("HABITX_DEBUG") == "" {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// sessions builds the session provider for the configured mode: a token
// file next to the store when hosted, the fixed device owner when local.
func sessions(cfg *config.Config) (session.Provider, error) {
	if cfg.Remote() {
		return session.NewTokenFile(cfg.SessionFile())
	}
	return &session.Static{}, nil
}

// load wires the tracker for the configured mode and starts it.
func load(ctx context.Context) (*tracker.Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Configured() {
		return nil, errors.New("no record store configured, run habitx doctor")
	}

	log := logger()

	var store remote.Interface
	if cfg.Remote() {
		store = remote.NewHTTP(cfg.RemoteURL, cfg.RemoteKey, log)
	} else {
		store, err = remote.NewDiskv(cfg.StorePath(), log)
		if err != nil {
			return nil, err
		}
	}

	p, err := sessions(cfg)
	if err != nil {
		return nil, err
	}

	c := tracker.New(store, p, log)
	if err := c.Start(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// requester builds the insight requester when a summarizer is configured,
// nil otherwise. Runners treat nil as "print the fallback".
func requester(ctx context.Context) *insight.Requester {
	cfg, err := config.Load()
	if err != nil || cfg.GeminiAPIKey == "" {
		return nil
	}
	g, err := insight.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil
	}
	return &insight.Requester{Summarizer: g, Log: logger()}
}
