package log

import (
	"fmt"
	"time"
)

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// Str creates a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration creates a duration field rendered as a string.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Stringer renders value with its String method.
func Stringer(key string, value fmt.Stringer) Field {
	return Field{Key: key, Value: value.String()}
}

// Any creates a field with an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Err creates an "error" field. A nil error yields a nil value.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags the logger with a component name.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }

// Operation tags an entry with an operation name.
func Operation(name string) Field { return Field{Key: OperationKey, Value: name} }
