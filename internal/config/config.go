package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Defaults reproduce the stock behavior: 1s echo delay, 5s bot interval.
const (
	DefaultEchoDelay   = time.Second
	DefaultBotInterval = 5 * time.Second
	DefaultUserName    = "You"
	DefaultBotName     = "Sam"
)

// envPrefix namespaces env overrides, e.g. BANTER_BOT_INTERVAL=10s.
const envPrefix = "banter"

// Config is the only persisted config file schema. Durations are TOML
// strings in time.ParseDuration syntax.
type Config struct {
	UserName    string `toml:"user_name" envconfig:"USER_NAME"`
	BotName     string `toml:"bot_name" envconfig:"BOT_NAME"`
	EchoDelay   string `toml:"echo_delay" envconfig:"ECHO_DELAY"`
	BotInterval string `toml:"bot_interval" envconfig:"BOT_INTERVAL"`
	LogPath     string `toml:"log_path" envconfig:"LOG_PATH"`
	HistoryPath string `toml:"history_path" envconfig:"HISTORY_PATH"`
	Source      string `toml:"-" ignored:"true"`
}

func Default() Config {
	return Config{
		UserName:    DefaultUserName,
		BotName:     DefaultBotName,
		EchoDelay:   DefaultEchoDelay.String(),
		BotInterval: DefaultBotInterval.String(),
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".banter", "config.toml")
}

// Load reads the TOML file at path (DefaultPath when empty) and applies
// BANTER_* env overrides on top. A missing file is not an error: defaults
// plus env apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// EchoDelayDuration parses the echo delay; empty falls back to the default.
func (c Config) EchoDelayDuration() (time.Duration, error) {
	return parseDuration(c.EchoDelay, DefaultEchoDelay, "echo_delay")
}

// BotIntervalDuration parses the bot interval; empty falls back to the
// default.
func (c Config) BotIntervalDuration() (time.Duration, error) {
	return parseDuration(c.BotInterval, DefaultBotInterval, "bot_interval")
}

func parseDuration(raw string, fallback time.Duration, field string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", field, d)
	}
	return d, nil
}
