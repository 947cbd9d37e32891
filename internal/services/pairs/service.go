package pairsvc

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

const registryName = "pairs"

// Service indexes pairs by (base, quote).
type Service struct {
	logger   logpkg.Logger
	metrics  *metrics.Metrics
	changes  *changelog.Log
	pairs    *store.Map[fungible.Pair, PairInfo]
	maxLimit int
	now      func() time.Time

	// mu serializes the existence check and write of Create and Remove.
	mu sync.Mutex
}

// New returns a Service using the runtime logger.
func New(rt *runtime.Runtime) (*Service, error) {
	return NewWithLogger(rt, nil)
}

// NewWithLogger returns a Service using the provided logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) (*Service, error) {
	if logger == nil {
		logger = rt.Logger().With(logpkg.Component(registryName))
	}
	ns := rt.Config().Registry.PairsNamespace
	if _, err := rt.EnsureNamespace(ns, "Pair", store.PairKeys.Segments); err != nil {
		return nil, err
	}
	return &Service{
		logger:   logger,
		metrics:  rt.Metrics(),
		changes:  rt.Changes(),
		pairs:    store.NewMap[fungible.Pair, PairInfo](rt.DB(), ns, store.PairKeys),
		maxLimit: rt.Config().Registry.MaxListLimit,
		now:      time.Now,
	}, nil
}

func validate(p fungible.Pair) error {
	if p.Base == p.Quote {
		return fmt.Errorf("%w: base and quote are both %s", ErrInvalidPair, p.Base)
	}
	if p.Base.Payload() == "" || p.Quote.Payload() == "" {
		return fmt.Errorf("%w: %s has an empty payload", ErrInvalidPair, p)
	}
	return nil
}

// Create indexes info under info.Pair. The pair is stored as given; (a, b)
// and (b, a) are distinct entries.
func (s *Service) Create(ctx context.Context, info PairInfo) (out PairInfo, err error) {
	defer func() { s.metrics.Op(registryName, "create", err) }()
	if err := validate(info.Pair); err != nil {
		return PairInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.pairs.Has(info.Pair)
	if err != nil {
		return PairInfo{}, err
	}
	if ok {
		return PairInfo{}, fmt.Errorf("%w: %s", ErrExists, info.Pair)
	}
	info.CreatedAtMs = s.now().UnixMilli()
	if err := s.pairs.Save(ctx, info.Pair, info); err != nil {
		return PairInfo{}, err
	}
	s.logger.Info("pair created", logpkg.Stringer("pair", info.Pair), logpkg.Str("contract", info.Contract))
	s.record(ctx, changelog.PairChange(changelog.OpPairCreate, info.Pair, info.CreatedAtMs))
	return info, nil
}

// Get returns the record for p.
func (s *Service) Get(ctx context.Context, p fungible.Pair) (info PairInfo, err error) {
	defer func() { s.metrics.Op(registryName, "get", err) }()
	if err := ctx.Err(); err != nil {
		return PairInfo{}, err
	}
	info, err = s.pairs.Load(p)
	if errors.Is(err, store.ErrNotFound) {
		return PairInfo{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return info, err
}

// Remove deletes the record for p.
func (s *Service) Remove(ctx context.Context, p fungible.Pair) (err error) {
	defer func() { s.metrics.Op(registryName, "remove", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.pairs.Has(p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err := s.pairs.Remove(ctx, p); err != nil {
		return err
	}
	s.logger.Info("pair removed", logpkg.Stringer("pair", p))
	s.record(ctx, changelog.PairChange(changelog.OpPairRemove, p, s.now().UnixMilli()))
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

// ListByBase returns every pair whose base is base, quotes in store key order.
func (s *Service) ListByBase(ctx context.Context, base fungible.Fungible, opts ListOptions) ([]PairInfo, error) {
	opts.Base = &base
	return s.List(ctx, opts)
}

// ListByBaseKind returns every pair whose base has kind k.
func (s *Service) ListByBaseKind(ctx context.Context, k fungible.Kind, opts ListOptions) ([]PairInfo, error) {
	opts.Base, opts.BaseKind = nil, &k
	return s.List(ctx, opts)
}

// List returns pairs in store key order, narrowed by opts. Base payloads are
// length-prefixed in the key, so across bases shorter payloads sort first;
// quotes under one base sort by discriminant then payload bytes.
func (s *Service) List(ctx context.Context, opts ListOptions) (out []PairInfo, err error) {
	defer func() {
		s.metrics.Op(registryName, "list", err)
		s.metrics.Listed(registryName, len(out))
	}()
	f, err := filter.Compile(opts.Filter)
	if err != nil {
		return nil, err
	}
	var prefix [][]byte
	switch {
	case opts.Base != nil:
		prefix = opts.Base.KeySegments()
	case opts.BaseKind != nil:
		prefix = [][]byte{fungible.KindPrefix(*opts.BaseKind)}
	}
	limit := opts.Limit
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	err = s.pairs.Range(prefix, 0, func(p fungible.Pair, info PairInfo) bool {
		if ctx.Err() != nil {
			return false
		}
		if f.MatchPair(p, info) {
			out = append(out, info)
		}
		return len(out) < limit
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
