// Package config provides configuration loading and validation for the stretch CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidColor       = errors.New("invalid color mode")
	ErrInvalidWorkers     = errors.New("partition workers must be positive")
	ErrInvalidLength      = errors.New("resample length must not be negative")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidSampleRatio = errors.New("sample ratio must be within [0, 1]")
)

// Config holds all configuration for the stretch CLI.
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Partition PartitionConfig `mapstructure:"partition"`
	Resample  ResampleConfig  `mapstructure:"resample"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

// PartitionConfig holds partition command defaults.
type PartitionConfig struct {
	// Workers is the default number of partitions. Defaults to the CPU count.
	Workers int `mapstructure:"workers"`
}

// ResampleConfig holds resample command defaults.
type ResampleConfig struct {
	// Length is the default target length. Zero means it must be given explicitly.
	Length int `mapstructure:"length"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	OTLPEndpoint    string        `mapstructure:"otlp_endpoint"`
	OTLPInsecure    bool          `mapstructure:"otlp_insecure"`
	SampleRatio     float64       `mapstructure:"sample_ratio"`
	Prometheus      bool          `mapstructure:"prometheus"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".stretch")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/stretch")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.color", DefaultOutputColor)

	viperCfg.SetDefault("partition.workers", runtime.NumCPU())

	viperCfg.SetDefault("resample.length", DefaultResampleLength)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", false)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.sample_ratio", 0.0)
	viperCfg.SetDefault("telemetry.prometheus", false)
	viperCfg.SetDefault("telemetry.shutdown_timeout", DefaultShutdownTimeout)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if !slices.Contains(OutputFormats, config.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if !slices.Contains(ColorModes, config.Output.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, config.Output.Color)
	}

	if config.Partition.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Partition.Workers)
	}

	if config.Resample.Length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, config.Resample.Length)
	}

	_, err := ParseLogLevel(config.Logging.Level)
	if err != nil {
		return err
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	return nil
}

// ParseLogLevel converts a level name (debug, info, warn, error) to an [slog.Level].
func ParseLogLevel(level string) (slog.Level, error) {
	var lvl slog.Level

	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}

	return lvl, nil
}
