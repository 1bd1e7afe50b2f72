// Package logging provides structured logging for the argtypes CLI using slog.
//
// Loggers write either human-oriented text through [Handler] (colored when the
// destination is a terminal) or JSON through slog's JSON handler. [MultiHandler]
// fans records out to several destinations, which the CLI uses for --log-file.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Library code that has no context takes a *slog.Logger option instead and
// defaults to [NewDiscard].
//
// Tests use [ForTest] so log output shows up with the failing test.
package logging
