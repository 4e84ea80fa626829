// Package logging builds the application's slog loggers and re-exports the
// Attr helpers call sites use for structured fields.
//
// Console (text) and JSON formats are supported; file outputs tee alongside
// stdout when a log directory is configured.
package logging
