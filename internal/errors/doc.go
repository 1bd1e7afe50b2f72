// Package errors provides error handling conventions for the argtypes CLI.
//
// It wraps github.com/cockroachdb/errors so every package creates and
// annotates errors the same way, defines sentinel errors, and provides
// [ExitError] for mapping failures onto process exit codes.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): rejected argument, invalid flag or configuration
//   - ExitSystem (2): I/O or encoding failure
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrUnknownFormat, "Run: argtypes formats")
//	os.Exit(errors.ExitCode(err))
package errors
