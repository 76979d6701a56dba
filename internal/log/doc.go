// Package log provides the slog handler used for the stderr diagnostics
// channel. The handler renders compact single-line records intended for
// humans watching a scan, as opposed to machine-parsed structured logs.
package log
