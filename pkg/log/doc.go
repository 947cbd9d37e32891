// Package log provides the structured logging facade used across the module.
//
// # Overview
//
// Logger is a small leveled interface with a Field type for structured
// context. It is backed by log/slog through a bridge handler that feeds a
// Formatter and one or more Outputs, so slog-based code and the facade produce
// identical lines.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("assets"))
//	l.Info("asset registered", log.Str("id", "Coin(uluna)"))
//
// # Configuration
//
// ApplyConfig builds a logger from a declarative Config (level, text/json
// format, console/file/null outputs, redacted keys, sampling).
//
// # Interop
//
// RedirectStdLog routes the standard library logger (used by Pebble) through
// a Logger. Slog exposes the underlying *slog.Logger.
package log
