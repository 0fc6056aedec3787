package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	perrors "personacard/src/errors"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	// gemini-1.5-pro for its large context window.
	DefaultModel = "gemini-1.5-pro"

	// DefaultLimit caps the total number of activity items collected per run.
	DefaultLimit = 30

	// UserAgent identifies this tool on every Reddit request, as required
	// for script-type OAuth apps.
	UserAgent = "personacard/0.3 (persona card generator)"
)

// Config carries everything a single run needs. It is built once at startup
// from flags, the config file and the environment, then passed down to each
// stage; nothing reads the environment after this point.
type Config struct {
	// Credentials, all required
	RedditClientID string
	RedditSecret   string
	GeminiAPIKey   string

	// Run parameters
	Model      string
	Limit      int
	OutputPath string // empty means <username>_persona_card.png
	ThemePath  string // optional TOML theme override for the card
	SaveRaw    bool   // also write the raw model output next to the card
	Quiet      bool
}

// Dir returns the directory searched for the optional config file,
// $XDG_CONFIG_HOME/personacard on Linux.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "personacard")
}

// Validate checks that all required credentials are present and the run
// parameters are sane. Missing credentials are a fatal startup error.
func (c *Config) Validate() error {
	missing := ""
	switch {
	case c.RedditClientID == "":
		missing = "REDDIT_CLIENT_ID"
	case c.RedditSecret == "":
		missing = "REDDIT_SECRET"
	case c.GeminiAPIKey == "":
		missing = "GEMINI_API_KEY"
	}
	if missing != "" {
		return fmt.Errorf("%w: %s is not set", perrors.ErrMissingCredentials, missing)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("item limit must be positive, got %d", c.Limit)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

// Redacted returns the resolved configuration for display, with secrets
// reduced to loaded/missing markers.
func (c *Config) Redacted() []string {
	mark := func(s string) string {
		if s == "" {
			return "missing"
		}
		return "loaded"
	}
	return []string{
		fmt.Sprintf("reddit client id: %s", mark(c.RedditClientID)),
		fmt.Sprintf("reddit secret:    %s", mark(c.RedditSecret)),
		fmt.Sprintf("gemini api key:   %s", mark(c.GeminiAPIKey)),
		fmt.Sprintf("model:            %s", c.Model),
		fmt.Sprintf("item limit:       %d", c.Limit),
	}
}
