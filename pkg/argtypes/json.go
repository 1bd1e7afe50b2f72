package argtypes

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

func init() {
	registerFormat(Format{
		Name:       "json",
		Extensions: []string{".json"},
		New:        JSONFile,
	})
}

// JSONFile returns a handler that loads an existing regular file as JSON.
//
// A decode failure yields exactly "unable to load JSON file"; the decoder
// error is kept as the cause.
func JSONFile(opts ...Option) Handler[any] {
	o := newOptions(opts)

	return loadFile("json", o, func(_ Path, data []byte) (any, error) {
		v, err := decodeJSON(data, o.jsonUseNumber)
		if err != nil {
			return nil, &ArgumentTypeError{Msg: "unable to load JSON file", Err: err}
		}
		return v, nil
	})
}

func decodeJSON(data []byte, useNumber bool) (any, error) {
	// encoding/json would substitute U+FFFD for invalid bytes.
	if !utf8.Valid(data) {
		return nil, errors.New("decoding JSON: invalid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if useNumber {
		dec.UseNumber()
	}

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "decoding JSON")
		}
		return nil, errors.Wrap(err, "decoding JSON")
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding JSON: extra data after top-level value")
	}
	return v, nil
}
