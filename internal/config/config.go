package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fexplore/internal/errors"
	"fexplore/internal/explorer"
	"fexplore/internal/log"
	"fexplore/internal/ui"
)

// DefaultTimeFormat renders modification times as YYYY-MM-DD HH:MM:SS.
const DefaultTimeFormat = explorer.DefaultTimeFormat

// Config represents the application configuration structure.
// fexplore only ever reads it; nothing in the program writes it back.
type Config struct {
	Display struct {
		Color      bool   `yaml:"color"`       // Style console output when the terminal supports it
		HumanSizes bool   `yaml:"human_sizes"` // Render the size column as 1.2 kB instead of bytes
		TimeFormat string `yaml:"time_format"` // Go time layout for the modified column
		Banner     bool   `yaml:"banner"`      // Print the banner at startup
		Theme      string `yaml:"theme"`       // default, gruvbox or monochrome
	} `yaml:"display"`
	Search struct {
		MaxDepth     int  `yaml:"max_depth"`     // 0 means unlimited
		DetectCycles bool `yaml:"detect_cycles"` // Skip directories already visited in this search
	} `yaml:"search"`
	Log struct {
		Level string `yaml:"level"` // debug, info, warn, error
		JSON  bool   `yaml:"json"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// DefaultPath returns ~/.config/fexplore/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fexplore", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("cannot locate config directory", "", errors.InvalidConfig, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.InvalidConfig, err)
	}

	// Unmarshalling over the defaults keeps every key the file leaves out.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.LogWithFields(log.F("path", path)).Debug("config loaded")
	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.Color = true
	cfg.Display.HumanSizes = false
	cfg.Display.TimeFormat = DefaultTimeFormat
	cfg.Display.Banner = true
	cfg.Display.Theme = ui.DefaultTheme.Name

	cfg.Search.MaxDepth = 0
	cfg.Search.DetectCycles = true

	cfg.Log.Level = "warn"
	cfg.Log.JSON = false
	cfg.Log.File = ""

	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Display.TimeFormat == "" {
		return errors.NewConfigError("time format must not be empty", "display.time_format", errors.InvalidConfig, nil)
	}

	if _, ok := ui.ThemeByName(c.Display.Theme); !ok {
		return errors.NewConfigError("unknown theme", "display.theme", errors.InvalidConfig, nil)
	}

	if c.Search.MaxDepth < 0 {
		return errors.NewConfigError("max depth must be >= 0", "search.max_depth", errors.InvalidConfig, nil)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.NewConfigError("unknown log level", "log.level", errors.InvalidConfig, err)
	}

	return nil
}

// LogOptions translates the log section into logger options.
func (c *Config) LogOptions() []log.Option {
	var opts []log.Option
	if level, err := log.ParseLevel(c.Log.Level); err == nil {
		opts = append(opts, log.WithLevel(level))
	}
	if c.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	if c.Log.File != "" {
		opts = append(opts, log.WithFile(c.Log.File))
	}
	return opts
}

// ExplorerOptions translates the search section into explorer options.
func (c *Config) ExplorerOptions() []explorer.Option {
	return []explorer.Option{
		explorer.WithMaxDepth(c.Search.MaxDepth),
		explorer.WithCycleDetection(c.Search.DetectCycles),
	}
}

// Formatter builds the detailed-listing row formatter from the display section.
func (c *Config) Formatter() explorer.Formatter {
	return explorer.Formatter{
		TimeFormat: c.Display.TimeFormat,
		HumanSizes: c.Display.HumanSizes,
	}
}

// PrinterOptions translates the display section into console printer options.
func (c *Config) PrinterOptions() []ui.Option {
	theme, _ := ui.ThemeByName(c.Display.Theme)
	return []ui.Option{
		ui.WithColor(c.Display.Color),
		ui.WithTheme(theme),
	}
}
