package argtypes

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/pkg/fileutil"
)

// Decoder parses raw file contents into generic Go values.
type Decoder interface {
	Decode(data []byte) (any, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte) (any, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (any, error) {
	return f(data)
}

type options struct {
	maxSize       int64
	logger        *slog.Logger
	yamlDecoder   Decoder
	jsonUseNumber bool
}

// Option configures a content loader.
type Option func(*options)

// WithMaxSize caps the number of bytes a loader will read. Values <= 0 keep
// the default of [fileutil.DefaultMaxFileSize].
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithLogger sets the logger used for debug records. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithJSONUseNumber makes the JSON loader decode numbers as json.Number
// instead of float64.
func WithJSONUseNumber() Option {
	return func(o *options) {
		o.jsonUseNumber = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		maxSize: fileutil.DefaultMaxFileSize,
		logger:  logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// parseFunc turns file contents into a value. Returned errors must already be
// *ArgumentTypeError.
type parseFunc func(p Path, data []byte) (any, error)

// loadFile validates the path as a regular file, reads it under the size cap
// and hands the bytes to parse.
func loadFile(format string, o *options, parse parseFunc) Handler[any] {
	check := ExistingFile()

	return func(arg string) (any, error) {
		p, err := check(arg)
		if err != nil {
			return nil, err
		}

		data, err := fileutil.ReadFileWithLimit(string(p), o.maxSize)
		if err != nil {
			return nil, newArgError(err, `unable to read file "%s": %s`, p, readCause(err))
		}
		o.logger.Debug("read content file", "path", p.String(), "format", format, "bytes", len(data))

		v, err := parse(p, data)
		if err != nil {
			o.logger.Debug("parse failed", "path", p.String(), "format", format, "error", errors.UnwrapAll(err))
			return nil, err
		}
		return v, nil
	}
}

func readCause(err error) string {
	if errors.Is(err, fileutil.ErrFileTooLarge) {
		return err.Error()
	}
	return errors.UnwrapAll(err).Error()
}
