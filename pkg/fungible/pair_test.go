package fungible

import (
	"errors"
	"testing"
)

func TestPairString(t *testing.T) {
	p := NewPair(Coin("uluna"), Token("whDAI"))
	if p.String() != "Coin(uluna)/Token(whDAI)" {
		t.Fatalf("got %q", p.String())
	}
	got, err := ParsePair(p.String())
	if err != nil || got != p {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestParsePairSlashInPayload(t *testing.T) {
	p := NewPair(Coin("ibc/ABC"), Token("terra1x"))
	got, err := ParsePair(p.String())
	if err != nil || got != p {
		t.Fatalf("got %v, %v", got, err)
	}
}

// The first ")/" boundary that yields two identifiers wins, so payloads that
// contain ")/" can be split differently from how they were built.
func TestParsePairAmbiguity(t *testing.T) {
	p := NewPair(Coin("a)/Coin(b"), Token("c"))
	got, err := ParsePair(p.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got == p {
		t.Fatalf("expected the ambiguous split to differ")
	}
	if got.Base != Coin("a") || got.Quote != Coin("b)/Token(c") {
		t.Fatalf("got %v", got)
	}
}

func TestParsePairErrors(t *testing.T) {
	for _, in := range []string{"", "Coin(a)", "Coin(a)-Token(b)", "Coin(a)/", "/Token(b)"} {
		if _, err := ParsePair(in); !errors.Is(err, ErrParse) {
			t.Fatalf("%q: expected parse error, got %v", in, err)
		}
	}
}

func TestPairCompareAndReverse(t *testing.T) {
	a := NewPair(Token("x"), Coin("uluna"))
	b := NewPair(Coin("uluna"), Token("x"))
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("pair compare by base first")
	}
	if a.Reverse() != b {
		t.Fatalf("reverse")
	}
	c := NewPair(Coin("uluna"), Coin("uusd"))
	if b.Compare(c) != -1 {
		t.Fatalf("pair compare by quote second")
	}
}

func TestPairKeySegments(t *testing.T) {
	p := NewPair(Coin("uluna"), Token("whDAI"))
	segs := p.KeySegments()
	if len(segs) != 4 {
		t.Fatalf("want 4 segments, got %d", len(segs))
	}
	got, err := PairFromKeySegments(segs)
	if err != nil || got != p {
		t.Fatalf("got %v, %v", got, err)
	}
	if _, err := PairFromKeySegments(segs[:3]); err == nil {
		t.Fatalf("expected error")
	}
}
