package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Root != "~/entries" {
		t.Errorf("root = %q", cfg.Root)
	}
	if cfg.Sampler.Policy != "mixed" || cfg.Sampler.MixWeight != 0.7 {
		t.Errorf("sampler defaults = %+v", cfg.Sampler)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
root = "/srv/entries"
database_path = "/var/lib/versus/versus.db"

[sampler]
policy = "uniform"
mix_weight = 0.4

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/srv/entries" {
		t.Errorf("root = %q", cfg.Root)
	}
	if cfg.DatabasePath != "/var/lib/versus/versus.db" {
		t.Errorf("database path = %q", cfg.DatabasePath)
	}
	if cfg.Sampler.Policy != "uniform" || cfg.Sampler.MixWeight != 0.4 {
		t.Errorf("sampler = %+v", cfg.Sampler)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesRoot(t *testing.T) {
	t.Setenv("VERSUS_ROOT", "/env/entries")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/env/entries" {
		t.Errorf("root = %q, want the env override", cfg.Root)
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantIn   string
	}{
		{
			name:     "empty root",
			contents: `root = ""`,
			wantIn:   "root",
		},
		{
			name: "unknown policy",
			contents: `[sampler]
policy = "chaos"`,
			wantIn: "policy",
		},
		{
			name: "mix weight out of range",
			contents: `[sampler]
mix_weight = 1.5`,
			wantIn: "mix_weight",
		},
		{
			name:     "malformed toml",
			contents: `root = [broken`,
			wantIn:   "parse config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q should mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestExpandedDatabasePath(t *testing.T) {
	cfg := Config{Root: "/srv/entries"}
	if got := cfg.ExpandedDatabasePath(); got != filepath.Join("/srv/entries", ".versus.db") {
		t.Errorf("default database path = %q", got)
	}

	cfg.DatabasePath = "/elsewhere/versus.db"
	if got := cfg.ExpandedDatabasePath(); got != "/elsewhere/versus.db" {
		t.Errorf("explicit database path = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}

	cfg := Config{Root: "~/entries"}
	if got := cfg.ExpandedRoot(); got != filepath.Join(home, "entries") {
		t.Errorf("ExpandedRoot() = %q", got)
	}

	cfg.Root = "/absolute/entries"
	if got := cfg.ExpandedRoot(); got != "/absolute/entries" {
		t.Errorf("absolute root should pass through, got %q", got)
	}
}
