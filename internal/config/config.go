// Package config loads the algokit CLI settings from a TOML file.
//
// A missing file yields Default(). Unknown keys are rejected so that typos in a
// config file surface instead of being silently ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/algokit/algoerr"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig is returned for unreadable files, unknown keys and out-of-range values.
var ErrInvalidConfig = algoerr.New(algoerr.InvalidInput, "config: invalid configuration")

// Config holds the CLI defaults. Flags override individual fields.
type Config struct {
	NodeBudget  int    `toml:"node_budget"`  // search-node budget for backtracking commands; 0 = unlimited
	Suggestions int    `toml:"suggestions"`  // completions returned by "complete"
	SpellBudget int    `toml:"spell_budget"` // edit-distance budget for "spell"
	Parallelism int    `toml:"parallelism"`  // concurrent jobs in batch mode
	LogLevel    string `toml:"log_level"`    // debug, info, warn or error
	Output      string `toml:"output"`       // text or json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		NodeBudget:  0,
		Suggestions: 10,
		SpellBudget: 2,
		Parallelism: 4,
		LogLevel:    "info",
		Output:      OutputText,
	}
}

// Load reads path over Default(). An empty path or a missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks every field's range.
func (c Config) Validate() error {
	switch {
	case c.NodeBudget < 0:
		return fmt.Errorf("%w: node_budget must be ≥ 0, got %d", ErrInvalidConfig, c.NodeBudget)
	case c.Suggestions <= 0:
		return fmt.Errorf("%w: suggestions must be positive, got %d", ErrInvalidConfig, c.Suggestions)
	case c.SpellBudget < 0:
		return fmt.Errorf("%w: spell_budget must be ≥ 0, got %d", ErrInvalidConfig, c.SpellBudget)
	case c.Parallelism <= 0:
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalidConfig, c.Parallelism)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
	}

	return nil
}
