package log

import (
	stdlog "log"
	"log/slog"
	"strings"
)

func slogFrom(h *bridgeHandler) *slog.Logger { return slog.New(h) }

// stdWriter adapts a Logger to io.Writer for the standard library logger.
type stdWriter struct {
	l     Logger
	level Level
}

func (w stdWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch w.level {
	case DebugLevel:
		w.l.Debug(msg)
	case WarnLevel:
		w.l.Warn(msg)
	case ErrorLevel, FatalLevel:
		w.l.Error(msg)
	default:
		w.l.Info(msg)
	}
	return len(p), nil
}

// ToStdLogger returns a *log.Logger whose lines are logged at level.
func ToStdLogger(l Logger, level Level) *stdlog.Logger {
	return stdlog.New(stdWriter{l: l, level: level}, "", 0)
}

// RedirectStdLog sends the standard library's default logger output through
// l at InfoLevel.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetPrefix("")
	stdlog.SetOutput(stdWriter{l: l.WithComponent("stdlog"), level: InfoLevel})
}
