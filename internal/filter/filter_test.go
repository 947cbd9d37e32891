package filter

import (
	"errors"
	"testing"

	"github.com/voydwalkr/fungible/pkg/fungible"
)

type record struct {
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

func TestEmptyMatchesAll(t *testing.T) {
	f, err := Compile("  ")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if f.Enabled() {
		t.Fatalf("empty filter should be disabled")
	}
	if !f.Match(fungible.Token("x"), nil) {
		t.Fatalf("empty filter should match")
	}
	var zero Filter
	if !zero.Match(fungible.Coin("y"), nil) {
		t.Fatalf("zero filter should match")
	}
}

func TestMatchVariables(t *testing.T) {
	cases := []struct {
		expr string
		id   fungible.Fungible
		rec  any
		want bool
	}{
		{`kind == "Coin"`, fungible.Coin("uluna"), nil, true},
		{`kind == "Coin"`, fungible.Token("terra1"), nil, false},
		{`name.startsWith("u")`, fungible.Coin("uusd"), nil, true},
		{`display == "Token(whDAI)"`, fungible.Token("whDAI"), nil, true},
		{`json.decimals >= 6.0`, fungible.Coin("uluna"), record{Symbol: "LUNA", Decimals: 6}, true},
		{`json.symbol == "DAI" && kind == "Token"`, fungible.Token("whDAI"), record{Symbol: "DAI", Decimals: 18}, true},
		// missing field: evaluation error counts as no match
		{`json.missing == 1.0`, fungible.Coin("a"), record{}, false},
	}
	for _, c := range cases {
		f, err := Compile(c.expr)
		if err != nil {
			t.Fatalf("compile %q: %v", c.expr, err)
		}
		if got := f.Match(c.id, c.rec); got != c.want {
			t.Errorf("%q on %v: got %v want %v", c.expr, c.id, got, c.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{`kind ==`, `unknown_var == 1`, `name + "x"`} {
		if _, err := Compile(expr); !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid for %q, got %v", expr, err)
		}
	}
}

func TestString(t *testing.T) {
	f, err := Compile(` kind == "Coin" `)
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != `kind == "Coin"` {
		t.Fatalf("got %q", f.String())
	}
}

func TestMatchPair(t *testing.T) {
	p := fungible.NewPair(fungible.Coin("uluna"), fungible.Token("whDAI"))
	cases := []struct {
		expr string
		want bool
	}{
		{`kind == "Coin" && quote_kind == "Token"`, true},
		{`quote_name == "whDAI"`, true},
		{`display + "/" + quote_display == "Coin(uluna)/Token(whDAI)"`, true},
		{`quote_kind == "Coin"`, false},
	}
	for _, c := range cases {
		f, err := Compile(c.expr)
		if err != nil {
			t.Fatalf("compile %q: %v", c.expr, err)
		}
		if got := f.MatchPair(p, nil); got != c.want {
			t.Errorf("%q: got %v want %v", c.expr, got, c.want)
		}
	}
	f, _ := Compile(`quote_name == ""`)
	if !f.Match(fungible.Coin("x"), nil) {
		t.Fatalf("quote variables should be empty for single identifiers")
	}
}
