// Package transports provides pluggable registry access for the CLI: a local
// transport that opens the store directly and an HTTP transport that talks to
// a running server.
package transports

import (
	"context"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// AssetQuery narrows ListAssets.
type AssetQuery struct {
	Kind   *fungible.Kind
	Filter string
	Limit  int
	// ValueOrder lists Tokens before Coins instead of store order.
	ValueOrder bool
}

// PairQuery narrows ListPairs. Base takes precedence over Kind.
type PairQuery struct {
	Base   *fungible.Fungible
	Kind   *fungible.Kind
	Filter string
	Limit  int
}

// RegistryTransport abstracts the transport used by the CLI (local/HTTP).
type RegistryTransport interface {
	PutAsset(ctx context.Context, a assetsvc.Asset) (assetsvc.Asset, error)
	GetAsset(ctx context.Context, id fungible.Fungible) (assetsvc.Asset, error)
	RemoveAsset(ctx context.Context, id fungible.Fungible) error
	ListAssets(ctx context.Context, q AssetQuery) ([]assetsvc.Asset, error)

	CreatePair(ctx context.Context, info pairsvc.PairInfo) (pairsvc.PairInfo, error)
	GetPair(ctx context.Context, p fungible.Pair) (pairsvc.PairInfo, error)
	RemovePair(ctx context.Context, p fungible.Pair) error
	ListPairs(ctx context.Context, q PairQuery) ([]pairsvc.PairInfo, error)

	// Changes reads the change feed after the given sequence, waiting up to
	// wait for the next append when nothing is pending.
	Changes(ctx context.Context, after uint64, limit int, wait time.Duration) (changelog.Page, error)

	Close() error
}
