package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// JSONFormatter renders one JSON object per entry.
type JSONFormatter struct {
	// TimeFormat defaults to time.RFC3339Nano.
	TimeFormat string
	// WithCaller includes the caller file:line when known.
	WithCaller bool
}

// Format implements Formatter.
func (f *JSONFormatter) Format(e *Entry) ([]byte, error) {
	tf := f.TimeFormat
	if tf == "" {
		tf = time.RFC3339Nano
	}
	m := make(map[string]interface{}, len(e.Fields)+4)
	for k, v := range e.Fields {
		m[k] = v
	}
	m["ts"] = e.Timestamp.Format(tf)
	m["level"] = e.Level.String()
	m["msg"] = e.Message
	if f.WithCaller && e.Caller != "" {
		m["caller"] = e.Caller
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// TextFormatter renders "ts LEVEL msg key=value ..." lines with keys sorted.
type TextFormatter struct {
	// TimeFormat defaults to "2006-01-02T15:04:05.000Z07:00".
	TimeFormat string
	// DisableTimestamp omits the timestamp column.
	DisableTimestamp bool
	WithCaller       bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(e *Entry) ([]byte, error) {
	var buf bytes.Buffer
	if !f.DisableTimestamp {
		tf := f.TimeFormat
		if tf == "" {
			tf = "2006-01-02T15:04:05.000Z07:00"
		}
		buf.WriteString(e.Timestamp.Format(tf))
		buf.WriteByte(' ')
	}
	fmt.Fprintf(&buf, "%-5s %s", e.Level.String(), e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(textValue(e.Fields[k]))
	}
	if f.WithCaller && e.Caller != "" {
		buf.WriteString(" caller=")
		buf.WriteString(e.Caller)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func textValue(v interface{}) string {
	var s string
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
