package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultRoot      = "~/entries"
	defaultMixWeight = 0.7
	defaultPolicy    = "mixed"
	defaultLogLevel  = "info"

	// The database lives inside the root as a hidden file, which the
	// reconciler walk must therefore skip.
	databaseName = ".versus.db"
)

// Sampler configures how comparison candidates are drawn.
type Sampler struct {
	Policy    string  `toml:"policy"`
	MixWeight float64 `toml:"mix_weight"`
}

// Logging configures log output.
type Logging struct {
	Level string `toml:"level"`
}

// Config holds the tool configuration.
type Config struct {
	Root         string  `toml:"root"`
	DatabasePath string  `toml:"database_path"`
	Sampler      Sampler `toml:"sampler"`
	Logging      Logging `toml:"logging"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Root: defaultRoot,
		Sampler: Sampler{
			Policy:    defaultPolicy,
			MixWeight: defaultMixWeight,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "versus", "config.toml")
}

// Load reads the config file at path, starting from defaults. A missing
// file is not an error. The VERSUS_ROOT environment variable overrides
// the configured root.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv("VERSUS_ROOT"); env != "" {
		cfg.Root = env
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Root == "" {
		return errors.New("root directory is required")
	}
	switch c.Sampler.Policy {
	case "", "uniform", "uncertainty", "mixed":
	default:
		return fmt.Errorf("unknown sampler policy %q", c.Sampler.Policy)
	}
	if c.Sampler.MixWeight < 0 || c.Sampler.MixWeight > 1 {
		return fmt.Errorf("sampler mix_weight %v outside [0, 1]", c.Sampler.MixWeight)
	}
	return nil
}

// ExpandedRoot returns the root directory with ~ expanded.
func (c Config) ExpandedRoot() string {
	return expandHome(c.Root)
}

// ExpandedDatabasePath returns the database location, defaulting to a
// hidden file inside the root.
func (c Config) ExpandedDatabasePath() string {
	if c.DatabasePath != "" {
		return expandHome(c.DatabasePath)
	}
	return filepath.Join(c.ExpandedRoot(), databaseName)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
