// Package store implements typed, ordered maps on top of Pebble using a
// segmented key layout.
//
// # Key layout
//
//	len16(namespace) | namespace | len16(seg0) | seg0 | ... | segN (raw)
//
// Every segment except the last is prefixed with its length as a 2-byte
// big-endian integer; the last segment runs to the end of the key. This lets
// a key made of several independently encoded components (for example a
// fungible.Pair, whose identifiers carry no length of their own) be split
// back unambiguously, and lets callers scan every key sharing its leading
// segments:
//
//	m := store.NewMap[fungible.Pair, PairInfo](db, "pairs", store.PairKeys)
//	_ = m.Save(ctx, fungible.NewPair(fungible.Coin("uluna"), fungible.Token("whDAI")), info)
//	// every pair whose base is any Coin
//	_ = m.Range(store.Prefix(fungible.KindPrefix(fungible.KindCoin)), 0, fn)
//
// Values are stored as JSON.
package store
