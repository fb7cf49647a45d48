package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEmbeddedMatchesDefault keeps the embedded YAML and Default in sync.
func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

// TestLoad_CustomPath overrides only the fields present in the file.
func TestLoad_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: cross\nparallel: true\nrender:\n  color: never\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cross", cfg.Strategy)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, ColorNever, cfg.Render.Color)
	assert.Equal(t, 100, cfg.ExactThreshold, "untouched fields keep defaults")
	assert.Equal(t, 201, cfg.Render.MaxWindow)
}

// TestLoad_UserConfig finds ~/.latticewalk/latticewalk.yaml when no path is given.
func TestLoad_UserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".latticewalk", "latticewalk.yaml"), userConfigPath())

	dir := filepath.Join(home, ".latticewalk")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "latticewalk.yaml"), []byte("strategy: exact\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "exact", cfg.Strategy)
}

// TestLoad_CustomPathErrors reports unreadable and invalid files.
func TestLoad_CustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("strategy: spiral\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("strategy: [\n"), 0o644))
	_, err = Load(broken)
	assert.Error(t, err)
}

// TestValidate rejects each out-of-range field.
func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"Strategy":  func(c *Config) { c.Strategy = "spiral" },
		"Threshold": func(c *Config) { c.ExactThreshold = -1 },
		"LogLevel":  func(c *Config) { c.LogLevel = "loud" },
		"Window":    func(c *Config) { c.Render.MaxWindow = 0 },
		"Color":     func(c *Config) { c.Render.Color = "sometimes" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

// TestSolverOptions and Level translate config into runtime settings.
func TestSolverOptions(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	assert.Equal(t, log.DebugLevel, cfg.Level())

	opts, err := cfg.SolverOptions(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	cfg.Strategy = "nope"
	_, err = cfg.SolverOptions(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	cfg.LogLevel = "loud"
	assert.Equal(t, log.InfoLevel, cfg.Level())
}
