// Package config loads lateralload settings from defaults, an optional YAML
// file, a .env file and the environment, in increasing precedence.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. LATERALLOAD_FOLDER.
const EnvPrefix = "LATERALLOAD"

// Config is the complete application configuration.
type Config struct {
	// Folder is the default input folder.
	Folder string `yaml:"folder" envconfig:"FOLDER"`
	// OutputFile is the default report filename.
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
	// Spinner shows a progress spinner on interactive terminals.
	Spinner bool          `yaml:"spinner" envconfig:"SPINNER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=console json"`
	// File, when set, also writes JSON logs to a rotating file.
	File       string `yaml:"file" envconfig:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" envconfig:"MAX_SIZE_MB" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" envconfig:"MAX_BACKUPS" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputFile: "unique_points.xlsx",
		Spinner:    true,
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load builds the configuration. file is an optional YAML path; when empty
// the LATERALLOAD_CONFIG variable is consulted. Variables from a .env file in
// the working directory are loaded into the environment first.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg := Default()

	if file == "" {
		file = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if file != "" {
		if err := loadFromFile(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks value constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile overlays the YAML file at path onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
