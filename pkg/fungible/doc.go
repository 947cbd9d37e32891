// Package fungible provides an ordered, serializable identifier for a fungible
// asset: either a native ledger unit (Coin) or a contract-issued unit (Token).
//
// # Ordering
//
// Identifiers are totally ordered. Every Token sorts before every Coin, and
// within a variant payloads compare byte-wise:
//
//	Token("a") < Token("b") < Coin("a") < Coin("b")
//
// # Encodings
//
// Three independent codecs are provided:
//
//   - Text: Coin(uluna), Token(terra1...). Payloads are inserted verbatim and
//     are not escaped. A single identifier round-trips, but text that embeds
//     identifiers (such as a Pair) is only unambiguous for payloads without
//     parentheses.
//   - Key: one discriminant byte (0x00 Coin, 0x01 Token) followed by the raw
//     payload. The discriminant groups variants for prefix scans; its numeric
//     order is the inverse of the value order above.
//   - JSON: externally tagged, {"Coin":"uluna"} or {"Token":"terra1..."}.
//
// Usage
//
//	a := fungible.Coin("uluna")
//	b, _ := fungible.Parse("Token(whDAI)")
//	_ = a.Compare(b) // 1
//	k := a.Key()     // 0x00 'u' 'l' 'u' 'n' 'a'
//	c, _ := fungible.DecodeKey(k)
//	_ = c == a // true
package fungible
