package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps debug|info|warn|warning|error|fatal (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Fields is a map of field names to values.
type Fields map[string]interface{}

// Context keys for propagating logging context
const (
	RequestIDKey = "request_id"
	ComponentKey = "component"
	OperationKey = "operation"
)

// Entry represents a single log entry.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
	Caller    string
	Error     error
}

// Logger defines the core logging interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// Printf-style variants
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
	Fatalf(msg string, args ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	With(fields ...Field) Logger
	WithContext(ctx context.Context) Logger
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Formatter defines the interface for formatting log entries.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Output defines the interface for log outputs.
type Output interface {
	Write(entry *Entry, formattedEntry []byte) error
	Close() error
}

// LoggerOption is a function that configures a logger.
type LoggerOption func(*BaseLogger)

// BaseLogger implements the Logger interface.
type BaseLogger struct {
	level      *levelVar
	formatter  Formatter
	outputs    []Output
	slogLogger *slog.Logger
	handler    *bridgeHandler
	exit       func(int)
}

// levelVar is shared between a logger and every child derived from it so
// SetLevel applies to the whole tree.
type levelVar struct{ v Level }

// ContextExtractor extracts logging context from a context.Context.
func ContextExtractor(ctx context.Context) Fields {
	fields := Fields{}
	if ctx == nil {
		return fields
	}
	for _, k := range []string{RequestIDKey, ComponentKey, OperationKey} {
		if v := ctx.Value(ctxKey(k)); v != nil {
			fields[k] = v
		}
	}
	return fields
}

type ctxKey string

// ContextWith returns a context carrying a logging value under one of the
// well-known keys.
func ContextWith(ctx context.Context, key string, value interface{}) context.Context {
	return context.WithValue(ctx, ctxKey(key), value)
}

// NewLogger creates a new logger with the given options.
func NewLogger(options ...LoggerOption) Logger {
	logger := &BaseLogger{
		level:     &levelVar{v: InfoLevel},
		formatter: &JSONFormatter{},
		exit:      os.Exit,
	}
	for _, option := range options {
		option(logger)
	}
	if len(logger.outputs) == 0 {
		logger.outputs = append(logger.outputs, NewConsoleOutput())
	}
	logger.handler = newBridgeHandler(logger)
	logger.slogLogger = slog.New(logger.handler)
	return logger
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *BaseLogger) { l.level = &levelVar{v: level} }
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(l *BaseLogger) { l.formatter = formatter }
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(l *BaseLogger) { l.outputs = append(l.outputs, output) }
}

func (l *BaseLogger) log(level Level, msg string, attrs []slog.Attr) {
	if level >= l.level.v {
		l.slogLogger.LogAttrs(context.Background(), toSlogLevel(level), msg, attrs...)
	}
	if level == FatalLevel {
		l.exit(1)
	}
}

func (l *BaseLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, attrsFromFieldSlice(fields))
}

func (l *BaseLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, attrsFromFieldSlice(fields))
}

func (l *BaseLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, attrsFromFieldSlice(fields))
}

func (l *BaseLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, attrsFromFieldSlice(fields))
}

// Fatal logs at FatalLevel and exits the process.
func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, attrsFromFieldSlice(fields))
}

func (l *BaseLogger) Debugf(msg string, args ...interface{}) {
	l.log(DebugLevel, fmt.Sprintf(msg, args...), nil)
}

func (l *BaseLogger) Infof(msg string, args ...interface{}) {
	l.log(InfoLevel, fmt.Sprintf(msg, args...), nil)
}

func (l *BaseLogger) Warnf(msg string, args ...interface{}) {
	l.log(WarnLevel, fmt.Sprintf(msg, args...), nil)
}

func (l *BaseLogger) Errorf(msg string, args ...interface{}) {
	l.log(ErrorLevel, fmt.Sprintf(msg, args...), nil)
}

func (l *BaseLogger) Fatalf(msg string, args ...interface{}) {
	l.log(FatalLevel, fmt.Sprintf(msg, args...), nil)
}

// child returns a copy of l whose handler carries extra base attributes.
func (l *BaseLogger) child(attrs []slog.Attr) *BaseLogger {
	nl := *l
	nl.handler = l.handler.WithAttrs(attrs).(*bridgeHandler)
	nl.slogLogger = slog.New(nl.handler)
	return &nl
}

func (l *BaseLogger) WithField(key string, value interface{}) Logger {
	return l.child([]slog.Attr{slog.Any(key, value)})
}

func (l *BaseLogger) WithFields(fields Fields) Logger {
	return l.child(attrsFromMap(fields))
}

func (l *BaseLogger) WithError(err error) Logger {
	return l.child(attrsFromFieldSlice([]Field{Err(err)}))
}

func (l *BaseLogger) With(fields ...Field) Logger {
	return l.child(attrsFromFieldSlice(fields))
}

func (l *BaseLogger) WithContext(ctx context.Context) Logger {
	return l.child(attrsFromMap(ContextExtractor(ctx)))
}

func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

func (l *BaseLogger) SetLevel(level Level) { l.level.v = level }

func (l *BaseLogger) GetLevel() Level { return l.level.v }

// Slog returns the slog.Logger backed by the same pipeline.
func (l *BaseLogger) Slog() *slog.Logger { return l.slogLogger }

// Close closes every output.
func (l *BaseLogger) Close() error {
	var err error
	for _, o := range l.outputs {
		err = multierr.Append(err, o.Close())
	}
	return err
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return NewLogger(WithLevel(FatalLevel+1), WithOutput(&NullOutput{}))
}
