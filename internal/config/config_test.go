package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/voidrig/arsenal/internal/game/capacity"
)

func validConfig() Config {
	return Config{
		Content: ContentConfig{Root: "content"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Capacity: CapacityConfig{Base: 30},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyContentRoot(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Root = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_BadLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeCapacityBase(t *testing.T) {
	cfg := validConfig()
	cfg.Capacity.Base = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity.base")
}

func TestValidate_AggregatesViolations(t *testing.T) {
	cfg := Config{
		Logging:  LoggingConfig{Level: "trace", Format: "xml"},
		Capacity: CapacityConfig{Base: -5},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.root")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "capacity.base")
}

func TestLoad_ReadsYAMLWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// defaults fill the rest
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "content", cfg.Content.Root)
	assert.Equal(t, capacity.DefaultBaseCapacity, cfg.Capacity.Base)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: shout
`), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Property_AnyValidLevelFormatPasses(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Logging.Level = rapid.SampledFrom([]string{"debug", "info", "warn", "error"}).Draw(rt, "level")
		cfg.Logging.Format = rapid.SampledFrom([]string{"json", "console"}).Draw(rt, "format")
		cfg.Capacity.Base = rapid.IntRange(0, 100).Draw(rt, "base")
		assert.NoError(rt, cfg.Validate())
	})
}
