package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported document formats.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned when a configured format is not supported.
var ErrInvalidFormat = errors.New("config: unsupported format")

// Config represents the collect CLI configuration
type Config struct {
	InputFormat  string `mapstructure:"input_format"`
	OutputFormat string `mapstructure:"output_format"`
	Pretty       bool   `mapstructure:"pretty"`
	Verbose      bool   `mapstructure:"verbose"`
}

// flagKeys maps configuration keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"input_format":  "input",
	"output_format": "output",
	"pretty":        "pretty",
	"verbose":       "verbose",
}

// Load builds the configuration from, in increasing priority: defaults, an
// optional .collect.yaml in dir, COLLECT_* environment variables, and any
// flags in flags that were set explicitly. flags may be nil.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("input_format", FormatAuto)
	v.SetDefault("output_format", FormatJSON)
	v.SetDefault("pretty", false)
	v.SetDefault("verbose", false)

	v.SetConfigName(".collect")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("COLLECT")
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.InputFormat = strings.ToLower(cfg.InputFormat)
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.InputFormat {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: input format %q", ErrInvalidFormat, cfg.InputFormat)
	}
	switch cfg.OutputFormat {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidFormat, cfg.OutputFormat)
	}
	return nil
}
