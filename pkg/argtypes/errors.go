package argtypes

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ArgumentTypeError is the only error kind returned by handlers in this
// package. Error returns the user-facing message unchanged; the underlying
// cause, when there is one, is reachable through Unwrap.
type ArgumentTypeError struct {
	// Msg is the message shown to the user.
	Msg string

	// Err is the underlying cause. It may be nil.
	Err error
}

// Error returns the user-facing message.
func (e *ArgumentTypeError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *ArgumentTypeError) Unwrap() error {
	return e.Err
}

// IsArgumentTypeError reports whether err or any error in its chain is an
// *ArgumentTypeError.
func IsArgumentTypeError(err error) bool {
	var argErr *ArgumentTypeError
	return errors.As(err, &argErr)
}

func newArgError(cause error, format string, args ...any) *ArgumentTypeError {
	return &ArgumentTypeError{
		Msg: fmt.Sprintf(format, args...),
		Err: cause,
	}
}

// accessError reports a stat failure that is not "does not exist".
func accessError(p Path, err error) *ArgumentTypeError {
	return newArgError(errors.Wrapf(err, "stat %s", p), `unable to access "%s": %s`, p, errors.UnwrapAll(err))
}
