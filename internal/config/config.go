// Package config loads lexhl settings from a config file and the
// environment with viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dshills/lexhl/internal/highlight"
	"github.com/dshills/lexhl/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. LEXHL_STYLE.
const EnvPrefix = "LEXHL"

// Output modes.
const (
	OutputANSI  = "ansi"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all lexhl settings.
type Config struct {
	Style        string        `mapstructure:"style"`
	StyleFiles   []string      `mapstructure:"style_files"`
	Output       string        `mapstructure:"output"`        // "ansi" (default), "json" or "plain"
	LogLevel     string        `mapstructure:"log_level"`     // debug, info, warn, error
	MatchTimeout time.Duration `mapstructure:"match_timeout"` // per regex search; 0 disables
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Style:        highlight.DefaultStyleName,
		StyleFiles:   []string{},
		Output:       OutputANSI,
		LogLevel:     "warn",
		MatchTimeout: highlight.DefaultMatchTimeout,
	}
}

// SetDefaults registers the defaults on v, so every key is known to
// Unmarshal and can be overridden from the environment.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("style", d.Style)
	v.SetDefault("style_files", d.StyleFiles)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("match_timeout", d.MatchTimeout)
}

// Load reads the configuration into v and decodes it. An explicit path must
// exist; without one, ~/.config/lexhl/config.{toml,yaml,...} is used when
// present.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lexhl"))
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputANSI, OutputJSON, OutputPlain:
	default:
		return fmt.Errorf("%w: output %q (want ansi, json or plain)", ErrInvalidConfig, c.Output)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.MatchTimeout < 0 {
		return fmt.Errorf("%w: match_timeout %v is negative", ErrInvalidConfig, c.MatchTimeout)
	}
	return nil
}

// Logger builds a logger at the configured level writing to w.
func (c Config) Logger(w io.Writer) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.LogLevel)
	cfg.Output = w
	return logging.New(cfg)
}
