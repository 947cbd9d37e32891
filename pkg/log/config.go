package log

import (
	"fmt"
	"strings"
)

// Config declares a logger.
type Config struct {
	// Level is debug|info|warn|error|fatal. Empty means info.
	Level string `json:"level" yaml:"level"`
	// Format is text|json. Empty means text.
	Format string `json:"format" yaml:"format"`
	// Outputs lists console|null|file:<path>. Empty means console.
	Outputs []string `json:"outputs" yaml:"outputs"`
	// Redact lists field keys whose values are replaced by [REDACTED].
	Redact []string `json:"redact" yaml:"redact"`
	// SampleInitial and SampleThereafter enable per-message sampling when
	// SampleThereafter > 0.
	SampleInitial    int  `json:"sampleInitial" yaml:"sampleInitial"`
	SampleThereafter int  `json:"sampleThereafter" yaml:"sampleThereafter"`
	Caller           bool `json:"caller" yaml:"caller"`
}

// ApplyConfig builds a Logger from cfg.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var formatter Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = &TextFormatter{WithCaller: cfg.Caller}
	case "json":
		formatter = &JSONFormatter{WithCaller: cfg.Caller}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}

	opts := []LoggerOption{WithLevel(level), WithFormatter(formatter)}
	for _, o := range cfg.Outputs {
		switch {
		case o == "console" || o == "stderr":
			opts = append(opts, WithOutput(NewConsoleOutput()))
		case o == "null":
			opts = append(opts, WithOutput(NullOutput{}))
		case strings.HasPrefix(o, "file:"):
			fo, err := NewFileOutput(strings.TrimPrefix(o, "file:"))
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithOutput(fo))
		default:
			return nil, fmt.Errorf("log: unknown output %q", o)
		}
	}

	l := NewLogger(opts...).(*BaseLogger)
	h := l.handler.withRedactions(cfg.Redact).withSampler(cfg.SampleInitial, cfg.SampleThereafter)
	if h != l.handler {
		l.handler = h
		l.slogLogger = slogFrom(h)
	}
	return l, nil
}
