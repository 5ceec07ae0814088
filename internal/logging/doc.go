// Package logging provides structured logging for the skillcheck CLI
// built on log/slog.
//
// It offers a TTY-optimized text handler with color support, a JSON
// handler option for machine consumption, a multi-handler for writing
// to both a terminal and a log file, verbosity-to-level mapping for
// counted -v flags, and context helpers for carrying a logger through
// command execution.
package logging
