// Package config provides configuration management for argtypes using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/paths"
	"github.com/thoreinstein/argtypes/pkg/fileutil"
)

// EnvPrefix prefixes environment overrides, e.g. ARGTYPES_OUTPUT_FORMAT.
const EnvPrefix = "ARGTYPES"

// YAML decoders selectable with yaml_loader.
const (
	YAMLLoaderSafe  = "safe"
	YAMLLoaderGoccy = "goccy"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version      int    `mapstructure:"version" yaml:"version"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	YAMLLoader   string `mapstructure:"yaml_loader" yaml:"yaml_loader"`
	MaxFileSize  int64  `mapstructure:"max_file_size" yaml:"max_file_size"`
	LogFormat    string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists every configuration key in display order.
func Keys() []string {
	return []string{"version", "output_format", "yaml_loader", "max_file_size", "log_format"}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:      1,
		OutputFormat: string(fileutil.EncodingJSON),
		YAMLLoader:   YAMLLoaderSafe,
		MaxFileSize:  fileutil.DefaultMaxFileSize,
		LogFormat:    "text",
	}
}

// Init registers search paths, environment binding and defaults with Viper.
// Call it once at startup before Load.
func Init() {
	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, ".yaml"))
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("output_format", d.OutputFormat)
	viper.SetDefault("yaml_loader", d.YAMLLoader)
	viper.SetDefault("max_file_size", d.MaxFileSize)
	viper.SetDefault("log_format", d.LogFormat)
}

// Load reads and validates the configuration.
// If path is provided, that file must exist. If path is empty, the search
// paths are tried and a missing file means defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Mark(errors.Newf("invalid configuration: %s", strings.Join(msgs, "; ")), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the config file Viper read, or "" when defaults are in effect.
func Used() string {
	return viper.ConfigFileUsed()
}
