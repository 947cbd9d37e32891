package fungible

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Coin("uluna").String(); got != "Coin(uluna)" {
		t.Fatalf("got %q", got)
	}
	if got := Token("whDAI").String(); got != "Token(whDAI)" {
		t.Fatalf("got %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Fungible
	}{
		{"Coin(uluna)", Coin("uluna")},
		{"Token(whDAI)", Token("whDAI")},
		{"Coin()", Coin("")},
		{"Token(terra1 with spaces)", Token("terra1 with spaces")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"Bogus(x)", "", "Coin(", "Coin)", "coin(x)", "Coin(x", "Token", " Coin(x)"} {
		_, err := Parse(in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): expected *ParseError, got %v", in, err)
		}
		if pe.Input != in {
			t.Fatalf("ParseError should carry the original input: %q vs %q", pe.Input, in)
		}
		if !errors.Is(err, ErrParse) {
			t.Fatalf("expected errors.Is(err, ErrParse)")
		}
	}
}

func TestTextRoundTripWithoutParens(t *testing.T) {
	for _, p := range []string{"", "uluna", "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "terra1xyz", "日本", "a b\tc"} {
		for _, f := range []Fungible{Coin(p), Token(p)} {
			got, err := Parse(f.String())
			if err != nil {
				t.Fatalf("parse %q: %v", f.String(), err)
			}
			if got != f {
				t.Fatalf("round trip: got %v want %v", got, f)
			}
		}
	}
}

// Payloads are not escaped. Parsing strips exactly one wrapper, so a lone
// identifier always round-trips, but parentheses in the payload make the text
// form unusable for detecting nesting or for splitting larger texts.
func TestTextPayloadIsVerbatim(t *testing.T) {
	for _, f := range []Fungible{Coin("Token(x)"), Token("a)"), Coin(")("), Token("Coin(")} {
		got, err := Parse(f.String())
		if err != nil || got != f {
			t.Fatalf("%q: got %v, %v", f.String(), got, err)
		}
	}

	// Unbalanced text is accepted; the payload keeps the extra ")".
	got, err := Parse("Coin(a))")
	if err != nil || got != Coin("a)") {
		t.Fatalf("got %v, %v", got, err)
	}

	// A nested-looking text is read by the outer wrapper only.
	got, err = Parse("Token(Coin(x))")
	if err != nil || got != Token("Coin(x)") {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestTextMarshaler(t *testing.T) {
	b, err := Token("whDAI").MarshalText()
	if err != nil || string(b) != "Token(whDAI)" {
		t.Fatalf("marshal: %q %v", b, err)
	}
	var f Fungible
	if err := f.UnmarshalText([]byte("Coin(uluna)")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f != Coin("uluna") {
		t.Fatalf("got %v", f)
	}
	if err := f.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("Token(whDAI)"); got != Token("whDAI") {
		t.Fatalf("got %v", got)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrParse) {
			t.Fatalf("expected a ParseError panic, got %v", r)
		}
	}()
	MustParse("Bogus(x)")
}
