// Package logger provides logging for the nbversion application.
//
// It implements a two-tier model: internal diagnostics (Info, Warning, Error)
// that normally go only to an optional debug log file, and user-facing
// messages (InfoToUser, WarningToUser, Success, StatusMessage) that are
// always printed to the terminal with emoji prefixes.
//
// The Logger interface lives in internal/common so that consumers never need
// to import this package directly; DefaultLogger is the standard
// implementation, backed by log/slog's text handler when file logging is
// enabled.
//
// Output writers are injectable (NewWithOutput, SetStdout, SetStderr), which
// is how the rest of the codebase tests user-visible output without a
// terminal.
package logger
