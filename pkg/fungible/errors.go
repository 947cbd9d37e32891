package fungible

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("fungible: parse error")
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("fungible: decode error")
	// ErrInvalidDiscriminant is wrapped by a *DecodeError when the key tag byte
	// is neither 0x00 nor 0x01.
	ErrInvalidDiscriminant = errors.New("invalid discriminant")
)

// ParseError reports text that matches neither Coin(...) nor Token(...).
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fungible: cannot parse %q: expected Coin(<name>) or Token(<address>)", e.Input)
}

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// DecodeError reports bytes that cannot be decoded into Target.
type DecodeError struct {
	Target string
	Msg    string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Target, e.Msg, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Target, e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) hold.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func decodeErr(msg string, err error) *DecodeError {
	return &DecodeError{Target: typeName, Msg: msg, Err: err}
}

const typeName = "Fungible"
