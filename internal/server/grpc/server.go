package grpcserver

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/voydwalkr/fungible/internal/runtime"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// Server owns the gRPC server instance and runtime.
type Server struct {
	rt     *runtime.Runtime
	grpc   *grpc.Server
	lis    net.Listener
	logger logpkg.Logger
}

// New constructs a gRPC server and registers services.
func New(rt *runtime.Runtime, logger logpkg.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = rt.Logger()
	}
	s := &Server{rt: rt, logger: logger.WithComponent("grpc")}
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(s.logUnary)}, opts...)
	s.grpc = grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s.grpc, &healthSvc{rt: rt})
	return s
}

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug("grpc call",
		logpkg.Str("method", info.FullMethod),
		logpkg.Str("code", status.Code(err).String()),
		logpkg.Duration("dur", time.Since(start)),
	)
	return resp, err
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("grpc listening", logpkg.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
