package transports

import (
	"context"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/runtime"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// LocalTransport implements RegistryTransport against a store opened in
// process. Pebble holds an exclusive lock on the data dir, so it cannot be
// used while a server owns the same directory.
type LocalTransport struct {
	rt     *runtime.Runtime
	assets *assetsvc.Service
	pairs  *pairsvc.Service
}

// OpenLocal opens the store described by cfg.
func OpenLocal(cfg cfgpkg.Config, logger logpkg.Logger) (*LocalTransport, error) {
	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}
	assets, err := assetsvc.New(rt)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	pairs, err := pairsvc.New(rt)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	return &LocalTransport{rt: rt, assets: assets, pairs: pairs}, nil
}

// PutAsset registers a.
func (t *LocalTransport) PutAsset(ctx context.Context, a assetsvc.Asset) (assetsvc.Asset, error) {
	return t.assets.Register(ctx, a)
}

// GetAsset looks up id.
func (t *LocalTransport) GetAsset(ctx context.Context, id fungible.Fungible) (assetsvc.Asset, error) {
	return t.assets.Get(ctx, id)
}

// RemoveAsset deletes id.
func (t *LocalTransport) RemoveAsset(ctx context.Context, id fungible.Fungible) error {
	return t.assets.Remove(ctx, id)
}

// ListAssets lists assets in store or value order.
func (t *LocalTransport) ListAssets(ctx context.Context, q AssetQuery) ([]assetsvc.Asset, error) {
	opts := assetsvc.ListOptions{Kind: q.Kind, Filter: q.Filter, Limit: q.Limit}
	if q.ValueOrder {
		return t.assets.Sorted(ctx, opts)
	}
	return t.assets.List(ctx, opts)
}

// CreatePair indexes info.
func (t *LocalTransport) CreatePair(ctx context.Context, info pairsvc.PairInfo) (pairsvc.PairInfo, error) {
	return t.pairs.Create(ctx, info)
}

// GetPair looks up p.
func (t *LocalTransport) GetPair(ctx context.Context, p fungible.Pair) (pairsvc.PairInfo, error) {
	return t.pairs.Get(ctx, p)
}

// RemovePair deletes p.
func (t *LocalTransport) RemovePair(ctx context.Context, p fungible.Pair) error {
	return t.pairs.Remove(ctx, p)
}

// ListPairs lists pairs in store order.
func (t *LocalTransport) ListPairs(ctx context.Context, q PairQuery) ([]pairsvc.PairInfo, error) {
	return t.pairs.List(ctx, pairsvc.ListOptions{Base: q.Base, BaseKind: q.Kind, Filter: q.Filter, Limit: q.Limit})
}

// Close closes the store.
func (t *LocalTransport) Close() error { return t.rt.Close() }

// Changes reads the change feed of the opened store.
func (t *LocalTransport) Changes(ctx context.Context, after uint64, limit int, wait time.Duration) (changelog.Page, error) {
	if maxLimit := t.rt.Config().Registry.MaxListLimit; limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	return t.rt.Changes().ReadWait(ctx, changelog.ReadOptions{After: after, Limit: limit}, wait)
}
