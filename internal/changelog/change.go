package changelog

import (
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// Op names a registry mutation.
type Op string

const (
	OpAssetPut    Op = "asset.put"
	OpAssetRemove Op = "asset.remove"
	OpPairCreate  Op = "pair.create"
	OpPairRemove  Op = "pair.remove"
)

// Change is one entry of the feed. Asset operations set ID; pair operations
// set Pair.
type Change struct {
	Seq  uint64             `json:"seq"`
	Op   Op                 `json:"op"`
	ID   *fungible.Fungible `json:"id,omitempty"`
	Pair *fungible.Pair     `json:"pair,omitempty"`
	AtMs int64              `json:"atMs"`
}

// AssetChange builds a Change for an asset operation.
func AssetChange(op Op, id fungible.Fungible, atMs int64) Change {
	return Change{Op: op, ID: &id, AtMs: atMs}
}

// PairChange builds a Change for a pair operation.
func PairChange(op Op, p fungible.Pair, atMs int64) Change {
	return Change{Op: op, Pair: &p, AtMs: atMs}
}
