// Package logging assembles the structured slog loggers used by the replay
// tools.
//
// It owns the console and JSON handlers, routes diagnostics to stderr (or a
// log file) so they never interleave with rendered events on stdout, and
// exposes context helpers that tag every line of a run with its run id. A
// no-op logger is provided for tests and for wiring code that cannot fail.
package logging
