// Package config loads CLI settings from the environment and an optional
// charming.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all CLI configuration.
type Config struct {
	Output OutputConfig
	Log    LogConfig
	Import ImportConfig
}

// OutputConfig controls how documents are written.
type OutputConfig struct {
	Pretty bool
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// ImportConfig holds the defaults of the import command.
type ImportConfig struct {
	Mode string // table or charts
	Kind string // series kind used in table mode
}

// Load loads configuration from .env, environment and config file.
// Environment variables use the CHARMING_ prefix, e.g. CHARMING_LOG_LEVEL.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CHARMING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("charming")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.charming/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Output: OutputConfig{
			Pretty: v.GetBool("output.pretty"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Import: ImportConfig{
			Mode: v.GetString("import.mode"),
			Kind: v.GetString("import.kind"),
		},
	}

	return cfg, nil
}

// loadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func loadDotEnv() error {
	pwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	path := filepath.Join(pwd, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.pretty", false)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("import.mode", "table")
	v.SetDefault("import.kind", "line")
}
