package store

import "github.com/voydwalkr/fungible/pkg/fungible"

// Key is implemented by values usable as map keys.
type Key interface {
	KeySegments() [][]byte
}

// KeyCodec describes how many segments a key type produces and how to rebuild
// it from them.
type KeyCodec[K Key] struct {
	Segments int
	Decode   func(segs [][]byte) (K, error)
}

// FungibleKeys keys a map by a single identifier: discriminant, payload.
var FungibleKeys = KeyCodec[fungible.Fungible]{
	Segments: 2,
	Decode:   fungible.FromKeySegments,
}

// PairKeys keys a map by a (base, quote) pair: four segments.
var PairKeys = KeyCodec[fungible.Pair]{
	Segments: 4,
	Decode:   fungible.PairFromKeySegments,
}
