package fungible

import "strings"

const (
	coinOpen  = "Coin("
	tokenOpen = "Token("
	closer    = ")"
)

// String formats f as Coin(<name>) or Token(<address>). The payload is
// inserted verbatim.
func (f Fungible) String() string {
	if f.kind == KindToken {
		return tokenOpen + f.payload + closer
	}
	return coinOpen + f.payload + closer
}

// Parse is the inverse of String. The text between the opening wrapper and
// the final ")" is taken verbatim, with no check that parentheses balance.
func Parse(s string) (Fungible, error) {
	if !strings.HasSuffix(s, closer) {
		return Fungible{}, &ParseError{Input: s}
	}
	switch {
	case strings.HasPrefix(s, coinOpen) && len(s) >= len(coinOpen)+len(closer):
		return Coin(s[len(coinOpen) : len(s)-len(closer)]), nil
	case strings.HasPrefix(s, tokenOpen) && len(s) >= len(tokenOpen)+len(closer):
		return Token(s[len(tokenOpen) : len(s)-len(closer)]), nil
	}
	return Fungible{}, &ParseError{Input: s}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Fungible {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (f Fungible) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Fungible) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
