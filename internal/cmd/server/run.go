package serverrun

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"

	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/runtime"
	grpcserver "github.com/voydwalkr/fungible/internal/server/grpc"
	httpserver "github.com/voydwalkr/fungible/internal/server/http"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// Options configures Run.
type Options struct {
	Config cfgpkg.Config
	// Logger overrides the process logger built from Config.Log.
	Logger logpkg.Logger
}

// Run starts the gRPC and HTTP servers and blocks until ctx is cancelled or
// either server fails.
func Run(ctx context.Context, opts Options) (err error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	procLogger := opts.Logger
	if procLogger == nil {
		procLogger, err = logpkg.ApplyConfig(&cfg.Log)
		if err != nil {
			return err
		}
		if c, ok := procLogger.(io.Closer); ok {
			defer func() { err = multierr.Append(err, c.Close()) }()
		}
	}
	// Pebble and net/http write through the standard logger.
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: procLogger})
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, rt.Close()) }()

	procLogger.Info("starting fungible server",
		logpkg.Str("grpc", cfg.GRPCAddr),
		logpkg.Str("http", cfg.HTTPAddr),
		logpkg.Str("data_dir", cfg.DataDir),
		logpkg.Str("level", cfg.Log.Level),
		logpkg.Str("format", cfg.Log.Format),
	)

	hsrv, err := httpserver.New(rt, procLogger)
	if err != nil {
		return err
	}
	gsrv := grpcserver.New(rt, procLogger)

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		srvErrs error
	)
	serve := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(sctx); err != nil && sctx.Err() == nil {
				procLogger.Error("server failed", logpkg.Str("server", name), logpkg.Err(err))
				mu.Lock()
				srvErrs = multierr.Append(srvErrs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancel()
			}
		}()
	}
	serve("grpc", func(c context.Context) error { return gsrv.ListenAndServe(c, cfg.GRPCAddr) })
	serve("http", func(c context.Context) error { return hsrv.ListenAndServe(c, cfg.HTTPAddr) })

	<-sctx.Done()
	// Both servers drain on sctx; wait for them before the runtime closes the store.
	wg.Wait()
	gsrv.Close()
	hsrv.Close()
	procLogger.Info("fungible server stopped")
	return srvErrs
}
