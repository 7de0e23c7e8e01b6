// Package config loads dashboard configuration from a .habitx file and the
// HABITX_ environment, and answers whether the collaborators the dashboard
// depends on are actually reachable through it.
package config

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the endpoints for the three external collaborators: the
// record store, the session provider, and the summarizer.
type Config struct {
	// Path is the base path for the local record store and the session file.
	Path string

	// RemoteURL and RemoteKey point at a hosted record store. When RemoteURL
	// is empty the dashboard runs against the local store instead.
	RemoteURL string
	RemoteKey string

	// GeminiAPIKey and GeminiModel configure the insight summarizer.
	GeminiAPIKey string
	GeminiModel  string
}

const defaultModel = "gemini-3-flash-preview"

// Load reads the .habitx config file (if any) and the HABITX_ environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.habitx")
	v.SetDefault("gemini.model", defaultModel)
	v.SetConfigName(".habitx") // .yaml is implicit
	v.SetEnvPrefix("HABITX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("HABITX_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		path = v.GetString("path")
	}

	return &Config{
		Path:         path,
		RemoteURL:    sanitize(v.GetString("remote.url")),
		RemoteKey:    sanitize(v.GetString("remote.key")),
		GeminiAPIKey: sanitize(v.GetString("gemini.api_key")),
		GeminiModel:  v.GetString("gemini.model"),
	}, nil
}

// sanitize drops placeholder values that tend to leak in from copied example
// env files, and accidental surrounding quotes.
func sanitize(val string) string {
	val = strings.TrimSpace(val)
	val = strings.Trim(val, `'"`)
	if val == "" || val == "undefined" || val == "null" {
		return ""
	}
	if strings.Contains(val, "your_key") || strings.Contains(val, "your-project-id") {
		return ""
	}
	return val
}

// Remote reports whether a hosted record store is configured.
func (c *Config) Remote() bool {
	return c.RemoteURL != "" && c.RemoteKey != ""
}

// Configured reports whether the dashboard can reach a record store at all:
// either a hosted one or the local path. The interactive surfaces are gated
// on this.
func (c *Config) Configured() bool {
	return c.Remote() || c.Path != ""
}

// SessionFile is where the signed-in session token is persisted.
func (c *Config) SessionFile() string {
	return filepath.Join(c.Path, "session.jwt")
}

// StorePath is the base path of the local record store.
func (c *Config) StorePath() string {
	return filepath.Join(c.Path, "db")
}

// Diagnostic is one row of the configuration health check.
type Diagnostic struct {
	Name   string
	Status string
	OK     bool
}

// Diagnostics lists the health of each collaborator setting, in the order
// the doctor command prints them.
func (c *Config) Diagnostics() []Diagnostic {
	check := func(name, val string) Diagnostic {
		d := Diagnostic{Name: name, Status: "Missing"}
		if val != "" {
			d.Status = "Detected"
			d.OK = true
		}
		return d
	}
	return []Diagnostic{
		check("HABITX_GEMINI_API_KEY", c.GeminiAPIKey),
		check("HABITX_REMOTE_URL", c.RemoteURL),
		check("HABITX_REMOTE_KEY", c.RemoteKey),
		check("HABITX_PATH", c.Path),
	}
}
