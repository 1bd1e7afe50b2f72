package fileutil

import (
	"io"
	"math"
	"os"

	"github.com/thoreinstein/argtypes/internal/errors"
)

// DefaultMaxFileSize is the read cap used when callers have no better limit (16 MiB).
const DefaultMaxFileSize int64 = 16 << 20

// ErrFileTooLarge marks reads that exceeded their limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileWithLimit reads at most limit bytes from path and fails with an
// error marked ErrFileTooLarge if the file holds more. The file is closed on
// every return path.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be over.
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > limit {
		return nil, tooLarge(limit)
	}

	var r io.Reader = f
	if limit < math.MaxInt64 {
		// One byte past the limit tells an exact fit from an overflow.
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(limit)
	}

	return data, nil
}

func tooLarge(limit int64) error {
	return errors.Mark(errors.Newf("file exceeds maximum size of %d bytes", limit), ErrFileTooLarge)
}
