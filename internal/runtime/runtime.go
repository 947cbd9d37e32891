package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"

	"github.com/voydwalkr/fungible/internal/changelog"
	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/metrics"
	"github.com/voydwalkr/fungible/internal/namespace"
	pebblestore "github.com/voydwalkr/fungible/internal/storage/pebble"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	// Logger overrides the logger built from Config.Log. A provided logger is
	// not closed by the runtime.
	Logger logpkg.Logger
	// Metrics receives storage observations and registry counters. Nil
	// creates a fresh set.
	Metrics *metrics.Metrics
}

// Runtime wires storage, config, logging and metrics for a single-node
// instance.
type Runtime struct {
	db        *pebblestore.DB
	config    cfgpkg.Config
	logger    logpkg.Logger
	ownLogger io.Closer
	metrics   *metrics.Metrics
	changes   *changelog.Log
}

// ChangeLogName names the registry change feed.
const ChangeLogName = "registry"

// Open validates the configuration, initializes the underlying storage and
// returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fsync, err := pebblestore.ParseFsyncMode(cfg.Fsync)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{config: cfg, logger: opts.Logger, metrics: opts.Metrics}
	if rt.logger == nil {
		l, err := logpkg.ApplyConfig(&cfg.Log)
		if err != nil {
			return nil, err
		}
		rt.logger = l
		if c, ok := l.(io.Closer); ok {
			rt.ownLogger = c
		}
	}
	if rt.metrics == nil {
		rt.metrics = metrics.New()
	}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       cfg.DataDir,
		Fsync:         fsync,
		FsyncInterval: time.Duration(cfg.FsyncIntervalMs) * time.Millisecond,
		Logger:        rt.logger.WithComponent("pebble"),
		Metrics:       rt.metrics,
	})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("runtime: open store at %s: %w", cfg.DataDir, err), rt.closeLogger())
	}
	rt.db = db
	if rt.changes, err = changelog.Open(db, ChangeLogName, cfg.Registry.ChangeRetention); err != nil {
		return nil, multierr.Combine(err, db.Close(), rt.closeLogger())
	}
	rt.logger.Debug("runtime opened", logpkg.Str("data_dir", cfg.DataDir), logpkg.Str("fsync", cfg.Fsync))
	return rt, nil
}

func (r *Runtime) closeLogger() error {
	if r.ownLogger == nil {
		return nil
	}
	return r.ownLogger.Close()
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	var err error
	if r.db != nil {
		err = multierr.Append(err, r.db.Close())
		r.db = nil
	}
	err = multierr.Append(err, r.closeLogger())
	r.ownLogger = nil
	return err
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// EnsureNamespace creates a namespace record if absent.
func (r *Runtime) EnsureNamespace(name, keyType string, segments int) (namespace.Meta, error) {
	return namespace.EnsureNamespace(r.db, name, keyType, segments)
}

// DB exposes the underlying DB for advanced operations (internal use only).
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the runtime logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }

// Changes returns the registry change feed.
func (r *Runtime) Changes() *changelog.Log { return r.changes }

// Metrics returns the runtime collectors.
func (r *Runtime) Metrics() *metrics.Metrics { return r.metrics }
