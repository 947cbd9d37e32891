package assetsvc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
	"github.com/voydwalkr/fungible/internal/filter"
	"github.com/voydwalkr/fungible/internal/metrics"
	"github.com/voydwalkr/fungible/internal/runtime"
	"github.com/voydwalkr/fungible/internal/store"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

const registryName = "assets"

// Service provides register/lookup/list operations over the asset registry.
type Service struct {
	rt       *runtime.Runtime
	logger   logpkg.Logger
	metrics  *metrics.Metrics
	changes  *changelog.Log
	assets   *store.Map[fungible.Fungible, Asset]
	maxLimit int
	now      func() time.Time

	// mu serializes read-modify-write in Register and Remove.
	mu sync.Mutex
}

// New returns a Service using the runtime logger.
func New(rt *runtime.Runtime) (*Service, error) {
	return NewWithLogger(rt, nil)
}

// NewWithLogger returns a Service using the provided logger. The registry
// namespace is created on first use.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) (*Service, error) {
	if logger == nil {
		logger = rt.Logger().With(logpkg.Component(registryName))
	}
	ns := rt.Config().Registry.AssetsNamespace
	if _, err := rt.EnsureNamespace(ns, "Fungible", store.FungibleKeys.Segments); err != nil {
		return nil, err
	}
	return &Service{
		rt:       rt,
		logger:   logger,
		metrics:  rt.Metrics(),
		changes:  rt.Changes(),
		assets:   store.NewMap[fungible.Fungible, Asset](rt.DB(), ns, store.FungibleKeys),
		maxLimit: rt.Config().Registry.MaxListLimit,
		now:      time.Now,
	}, nil
}

func validate(a Asset) error {
	if a.ID.Payload() == "" {
		return fmt.Errorf("%w: %s has an empty payload", ErrInvalidAsset, a.ID.Kind())
	}
	if a.Decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals %d exceeds %d", ErrInvalidAsset, a.Decimals, MaxDecimals)
	}
	return nil
}

// Register stores a, replacing any previous record for a.ID. The creation
// time of an existing record is preserved.
func (s *Service) Register(ctx context.Context, a Asset) (out Asset, err error) {
	defer func() { s.metrics.Op(registryName, "register", err) }()
	if err := validate(a); err != nil {
		return Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UnixMilli()
	a.CreatedAtMs, a.UpdatedAtMs = now, now
	prev, err := s.assets.Load(a.ID)
	switch {
	case err == nil:
		a.CreatedAtMs = prev.CreatedAtMs
	case !errors.Is(err, store.ErrNotFound):
		return Asset{}, err
	}
	if err := s.assets.Save(ctx, a.ID, a); err != nil {
		return Asset{}, err
	}
	s.logger.Info("asset registered", logpkg.Stringer("id", a.ID), logpkg.Str("symbol", a.Symbol))
	s.record(ctx, changelog.AssetChange(changelog.OpAssetPut, a.ID, now))
	return a, nil
}

// Get returns the record registered under id.
func (s *Service) Get(ctx context.Context, id fungible.Fungible) (a Asset, err error) {
	defer func() { s.metrics.Op(registryName, "get", err) }()
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	a, err = s.assets.Load(id)
	if errors.Is(err, store.ErrNotFound) {
		return Asset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, err
}

// Remove deletes the record registered under id.
func (s *Service) Remove(ctx context.Context, id fungible.Fungible) (err error) {
	defer func() { s.metrics.Op(registryName, "remove", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.assets.Has(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.assets.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info("asset removed", logpkg.Stringer("id", id))
	s.record(ctx, changelog.AssetChange(changelog.OpAssetRemove, id, s.now().UnixMilli()))
	return nil
}

// record appends c to the change feed. The write it describes has already
// committed, so a failed append is logged and counted rather than returned.
func (s *Service) record(ctx context.Context, c changelog.Change) {
	_, err := s.changes.Append(ctx, c)
	s.metrics.Op(registryName, "record_change", err)
	if err != nil {
		s.logger.Error("change feed append failed", logpkg.Str("op", string(c.Op)), logpkg.Err(err))
	}
}

// List returns records in store key order: Coins before Tokens, payload
// bytes ascending within each kind.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Asset, error) {
	kinds := []fungible.Kind{fungible.KindCoin, fungible.KindToken}
	return s.scan(ctx, "list", kinds, opts)
}

// Sorted returns records in identifier value order: Tokens before Coins.
// Within one kind store order and value order agree, so this scans the
// Token range before the Coin range.
func (s *Service) Sorted(ctx context.Context, opts ListOptions) ([]Asset, error) {
	kinds := []fungible.Kind{fungible.KindToken, fungible.KindCoin}
	return s.scan(ctx, "sorted", kinds, opts)
}

func (s *Service) scan(ctx context.Context, op string, kinds []fungible.Kind, opts ListOptions) (out []Asset, err error) {
	defer func() {
		s.metrics.Op(registryName, op, err)
		s.metrics.Listed(registryName, len(out))
	}()
	f, err := filter.Compile(opts.Filter)
	if err != nil {
		return nil, err
	}
	if opts.Kind != nil {
		kinds = []fungible.Kind{*opts.Kind}
	}
	limit := s.limit(opts.Limit)
	for _, k := range kinds {
		if len(out) >= limit {
			break
		}
		err = s.assets.Range([][]byte{fungible.KindPrefix(k)}, 0, func(id fungible.Fungible, a Asset) bool {
			if ctx.Err() != nil {
				return false
			}
			if f.Match(id, a) {
				out = append(out, a)
			}
			return len(out) < limit
		})
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Service) limit(n int) int {
	if n <= 0 || n > s.maxLimit {
		return s.maxLimit
	}
	return n
}
