package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

// Config holds the resolved CLI settings from file, env and flags.
type Config struct {
	Config     string   `mapstructure:"config"`
	Port       int      `mapstructure:"port"`
	TimeMs     float64  `mapstructure:"time-ms"`
	Highlight  []string `mapstructure:"highlight"`
	Variant    string   `mapstructure:"variant"`
	LogLevel   string   `mapstructure:"log-level"`
	Color      string   `mapstructure:"color"`
	Output     string   `mapstructure:"output"`
	Labels     bool     `mapstructure:"labels"`
	Background string   `mapstructure:"background"`
}

// Defaults.
const (
	DefaultPort     = 3000
	DefaultLogLevel = "warn"
	envPrefix       = "HEALTHWHEEL"
	configName      = ".healthwheel"
)

// setDefaults registers defaults on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("time-ms", 0.0)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("color", "auto")
	v.SetDefault("output", "-")
	v.SetDefault("labels", true)
}

// loadConfig merges defaults, the optional config file, env and bound flags.
func loadConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// newLogger builds the slog text logger for the configured level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// applyColor sets fatih/color output from a yes/no/auto setting.
func applyColor(setting string) error {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "", "auto":
		// fatih/color already detects terminals and NO_COLOR
	case "yes", "true", "1", "always":
		color.NoColor = false
	case "no", "false", "0", "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color setting %q (want yes, no or auto)", setting)
	}
	return nil
}

// stderr is swapped in tests.
var stderr io.Writer = os.Stderr
