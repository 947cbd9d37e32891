package fungible

import "strings"

// Pair is an ordered (base, quote) couple of identifiers, typically used as a
// composite store key for a trading-pair index.
type Pair struct {
	Base  Fungible `json:"base"`
	Quote Fungible `json:"quote"`
}

// NewPair returns the pair (base, quote) as given; it does not reorder.
func NewPair(base, quote Fungible) Pair { return Pair{Base: base, Quote: quote} }

// Reverse returns (quote, base).
func (p Pair) Reverse() Pair { return Pair{Base: p.Quote, Quote: p.Base} }

// Compare orders pairs by base, then by quote.
func (p Pair) Compare(other Pair) int {
	if c := p.Base.Compare(other.Base); c != 0 {
		return c
	}
	return p.Quote.Compare(other.Quote)
}

// String formats the pair as <base>/<quote>, e.g. Coin(uluna)/Token(whDAI).
func (p Pair) String() string { return p.Base.String() + "/" + p.Quote.String() }

// ParsePair is the inverse of Pair.String. Every ")/" boundary is tried so
// that payloads containing "/" still parse when the split is unambiguous.
func ParsePair(s string) (Pair, error) {
	for i := strings.Index(s, ")/"); i >= 0; {
		base, errB := Parse(s[:i+1])
		quote, errQ := Parse(s[i+2:])
		if errB == nil && errQ == nil {
			return Pair{Base: base, Quote: quote}, nil
		}
		next := strings.Index(s[i+1:], ")/")
		if next < 0 {
			break
		}
		i += 1 + next
	}
	return Pair{}, &ParseError{Input: s}
}

// KeySegments returns the base segments followed by the quote segments.
func (p Pair) KeySegments() [][]byte {
	return append(p.Base.KeySegments(), p.Quote.KeySegments()...)
}

// PairFromKeySegments is the inverse of Pair.KeySegments.
func PairFromKeySegments(segs [][]byte) (Pair, error) {
	if len(segs) != 4 {
		return Pair{}, &DecodeError{Target: "Pair", Msg: "expected 4 key segments"}
	}
	base, err := FromKeySegments(segs[:2])
	if err != nil {
		return Pair{}, err
	}
	quote, err := FromKeySegments(segs[2:])
	if err != nil {
		return Pair{}, err
	}
	return Pair{Base: base, Quote: quote}, nil
}
