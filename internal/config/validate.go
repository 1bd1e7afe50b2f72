package config

import (
	"slices"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/pkg/fileutil"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedValue indicates a field holds a value outside its set.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrNotPositive indicates a size field is zero or negative.
	ErrNotPositive = errors.New("must be > 0")
)

// Validate checks a Config and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if !slices.Contains(fileutil.Encodings(), fileutil.Encoding(cfg.OutputFormat)) {
		errs = append(errs, &FieldError{Field: "output_format", Value: cfg.OutputFormat, Err: ErrUnsupportedValue})
	}

	if cfg.YAMLLoader != YAMLLoaderSafe && cfg.YAMLLoader != YAMLLoaderGoccy {
		errs = append(errs, &FieldError{Field: "yaml_loader", Value: cfg.YAMLLoader, Err: ErrUnsupportedValue})
	}

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, &FieldError{Field: "max_file_size", Err: ErrNotPositive})
	}

	if _, ok := logging.ParseFormat(cfg.LogFormat); !ok {
		errs = append(errs, &FieldError{Field: "log_format", Value: cfg.LogFormat, Err: ErrUnsupportedValue})
	}

	return errs
}

// FieldError reports an invalid value for one configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
