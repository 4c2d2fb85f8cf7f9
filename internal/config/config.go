// Package config loads brandkit configuration from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/brandkit/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. BRANDKIT_LOGGING_LEVEL.
const EnvPrefix = "BRANDKIT"

// Config is the full brandkit configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	History  HistoryConfig  `mapstructure:"history"`
	Preview  PreviewConfig  `mapstructure:"preview"`
	Presets  PresetsConfig  `mapstructure:"presets"`
}

type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	BusyTimeoutMs int    `mapstructure:"busy_timeout_ms"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type HistoryConfig struct {
	Depth int `mapstructure:"depth"`
}

type PreviewConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type PresetsConfig struct {
	// ProjectDir adds <dir>/.brandkit/presets to the preset search path.
	ProjectDir string `mapstructure:"project_dir"`
}

// DefaultConfigDir returns ~/.config/brandkit.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".brandkit"
	}
	return filepath.Join(home, ".config", "brandkit")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	dataDir := ".brandkit"
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dataDir = filepath.Join(home, ".local", "share", "brandkit")
	}
	return &Config{
		Database: DatabaseConfig{
			Path:          filepath.Join(dataDir, "brandkit.db"),
			BusyTimeoutMs: 5000,
		},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		History: HistoryConfig{Depth: store.DefaultHistoryDepth},
		Preview: PreviewConfig{Width: 300, Height: 250},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, fmt.Errorf("database.path is required"))
	}
	if c.History.Depth < 1 {
		errs = append(errs, fmt.Errorf("history.depth must be at least 1, got %d", c.History.Depth))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		errs = append(errs, fmt.Errorf("preview dimensions must be positive, got %dx%d", c.Preview.Width, c.Preview.Height))
	}
	return errors.Join(errs...)
}

// Loader reads configuration with viper.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a loader seeded with the defaults.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// SetConfigFile forces a specific config file instead of the search path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// ConfigFileUsed returns the file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load reads the config file (a missing default file is not an error),
// applies environment overrides and validates the result.
func (l *Loader) Load() (*Config, error) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(DefaultConfigDir())
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Presets.ProjectDir = expandHome(cfg.Presets.ProjectDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("database.busy_timeout_ms", cfg.Database.BusyTimeoutMs)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("history.depth", cfg.History.Depth)
	v.SetDefault("preview.width", cfg.Preview.Width)
	v.SetDefault("preview.height", cfg.Preview.Height)
	v.SetDefault("presets.project_dir", cfg.Presets.ProjectDir)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
