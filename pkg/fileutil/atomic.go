// Package fileutil provides bounded reads and atomic writes for the argtypes
// CLI.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/argtypes/internal/errors"
)

// Encoding names a serialization supported by Marshal.
type Encoding string

// Supported encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// ErrUnsupportedEncoding is returned by Marshal for unknown encodings.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encodings lists the supported encodings.
func Encodings() []Encoding {
	return []Encoding{EncodingJSON, EncodingYAML, EncodingTOML}
}

// Marshal serializes v and guarantees a trailing newline.
// JSON is indented with two spaces. TOML requires v to be a table.
func Marshal(v any, enc Encoding) (data []byte, err error) {
	switch enc {
	case EncodingJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case EncodingYAML:
		data, err = marshalYAML(v)
	case EncodingTOML:
		data, err = toml.Marshal(v)
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", string(enc))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling %s", enc)
	}

	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}

// marshalYAML turns yaml.v3 panics on unsupported types into errors.
func marshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("%v", r)
		}
	}()
	return yaml.Marshal(v)
}

// AtomicWriteFile writes data to a temp file in the destination directory and
// renames it into place, so an interrupted write leaves any previous file
// intact. The parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".argtypes-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// AtomicWriteValue marshals v with enc and writes it atomically.
// Nothing is written if marshaling fails.
func AtomicWriteValue(path string, v any, enc Encoding, perm os.FileMode) error {
	data, err := Marshal(v, enc)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, perm)
}
