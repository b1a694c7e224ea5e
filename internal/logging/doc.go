// Package logging builds the slog loggers used across shotlog.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log shippers. Loggers write to stderr (plus the configured
// log file) so stdout remains reserved for command output.
package logging
