package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fexplore/internal/config"
	"fexplore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
display:
  color: false
  human_sizes: true
  time_format: "02 Jan 06 15:04"
  theme: gruvbox
search:
  max_depth: 12
  detect_cycles: false
log:
  level: debug
  json: true
`
	partialYAML = `
search:
  max_depth: 3
`
	invalidSyntaxYAML = `
display:
  color: [unterminated
`
	negativeDepthYAML = `
search:
  max_depth: -1
`
	badLevelYAML = `
log:
  level: chatty
`
	emptyTimeFormatYAML = `
display:
  time_format: ""
`
	badThemeYAML = `
display:
  theme: neon
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.False(t, cfg.Display.Color)
		assert.True(t, cfg.Display.HumanSizes)
		assert.Equal(t, "02 Jan 06 15:04", cfg.Display.TimeFormat)
		assert.True(t, cfg.Display.Banner, "keys missing from the file keep their defaults")
		assert.Equal(t, "gruvbox", cfg.Display.Theme)
		assert.Equal(t, 12, cfg.Search.MaxDepth)
		assert.False(t, cfg.Search.DetectCycles)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.JSON)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, partialYAML))
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Search.MaxDepth)
		assert.True(t, cfg.Search.DetectCycles)
		assert.True(t, cfg.Display.Color)
		assert.Equal(t, config.DefaultTimeFormat, cfg.Display.TimeFormat)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("unreadable path", func(t *testing.T) {
		// A directory cannot be read as a file.
		_, err := config.LoadConfigFile(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		param string
	}{
		{"negative depth", negativeDepthYAML, "search.max_depth"},
		{"unknown log level", badLevelYAML, "log.level"},
		{"empty time format", emptyTimeFormatYAML, "display.time_format"},
		{"unknown theme", badThemeYAML, "display.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfigFile(createTestYAML(t, tt.yaml))
			require.Error(t, err)

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.param, configErr.Param())
		})
	}

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
	assert.NoError(t, config.New().Validate())
}

func TestLogOptions(t *testing.T) {
	cfg := config.New()
	assert.Len(t, cfg.LogOptions(), 1)

	cfg.Log.JSON = true
	cfg.Log.File = filepath.Join(t.TempDir(), "x.log")
	assert.Len(t, cfg.LogOptions(), 3)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/explorer")
	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/explorer/.config/fexplore/config.yaml", path)
}

func TestExplorerWiring(t *testing.T) {
	cfg := config.New()
	cfg.Display.HumanSizes = true
	cfg.Display.TimeFormat = "15:04"

	f := cfg.Formatter()
	assert.True(t, f.HumanSizes)
	assert.Equal(t, "15:04", f.TimeFormat)
	assert.Len(t, cfg.ExplorerOptions(), 2)
}

func TestPrinterOptions(t *testing.T) {
	cfg := config.New()
	assert.Len(t, cfg.PrinterOptions(), 2)
	assert.Equal(t, "default", cfg.Display.Theme)
}
