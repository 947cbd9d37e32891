package fungible

import (
	"slices"
	"strings"
)

// Kind is the variant tag of a Fungible.
type Kind uint8

const (
	// KindCoin tags a native ledger unit identified by its name.
	KindCoin Kind = iota
	// KindToken tags a contract-issued unit identified by its address.
	KindToken
)

// String returns the variant name as used by the text and JSON codecs.
func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "Coin"
	case KindToken:
		return "Token"
	default:
		return "Unknown"
	}
}

// ParseKind maps a variant name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coin":
		return KindCoin, true
	case "token":
		return KindToken, true
	default:
		return 0, false
	}
}

// rank orders variants for Compare. Tokens rank below Coins, which is the
// inverse of the key discriminant order.
func (k Kind) rank() int {
	if k == KindToken {
		return 0
	}
	return 1
}

// Fungible identifies a fungible asset. The zero value is Coin("").
//
// Fungible is a comparable value type: == is structural equality and values
// may be used as Go map keys.
type Fungible struct {
	kind    Kind
	payload string
}

// Coin returns the identifier of a native ledger unit.
func Coin(name string) Fungible { return Fungible{kind: KindCoin, payload: name} }

// Token returns the identifier of a contract-issued unit.
func Token(addr string) Fungible { return Fungible{kind: KindToken, payload: addr} }

// Kind reports the variant.
func (f Fungible) Kind() Kind { return f.kind }

// IsCoin reports whether f is a Coin.
func (f Fungible) IsCoin() bool { return f.kind == KindCoin }

// IsToken reports whether f is a Token.
func (f Fungible) IsToken() bool { return f.kind == KindToken }

// Payload returns the coin name or token address.
func (f Fungible) Payload() string { return f.payload }

// Equal reports structural equality.
func (f Fungible) Equal(other Fungible) bool { return f == other }

// Compare returns -1, 0 or 1. Tokens sort before Coins; within a variant the
// payloads are compared byte-wise.
func (f Fungible) Compare(other Fungible) int {
	if f == other {
		return 0
	}
	if f.kind != other.kind {
		if f.kind.rank() < other.kind.rank() {
			return -1
		}
		return 1
	}
	return strings.Compare(f.payload, other.payload)
}

// Less reports whether f sorts before other.
func (f Fungible) Less(other Fungible) bool { return f.Compare(other) < 0 }

// Compare is the free-function form of Fungible.Compare, usable with
// slices.SortFunc and friends.
func Compare(a, b Fungible) int { return a.Compare(b) }

// Sort sorts ids in place in value order.
func Sort(ids []Fungible) { slices.SortFunc(ids, Compare) }
