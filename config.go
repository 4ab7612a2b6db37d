package webshell

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/webterm/webshell/policy"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from YAML, JSON or environment-specific loaders; the
// zero-value inherits the package defaults.
type Config struct {
	// Workdir is the initial session working directory; empty means the
	// process working directory.
	Workdir string `json:"workdir,omitempty" yaml:"workdir,omitempty"`

	// CommandTimeoutMs caps how long one external command may run. Zero keeps
	// the runner default.
	CommandTimeoutMs int `json:"commandTimeoutMs,omitempty" yaml:"commandTimeoutMs,omitempty"`

	// HistoryLimit is how many records the history builtin renders.
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`

	// Policy optionally gates commands; nil executes everything.
	Policy *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		HistoryLimit: 20,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("historyLimit must be > 0")
	}
	if c.CommandTimeoutMs < 0 {
		return fmt.Errorf("commandTimeoutMs must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML config from the supplied URL (any scheme afs
// understands, plain paths included).
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	result := DefaultConfig()
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
