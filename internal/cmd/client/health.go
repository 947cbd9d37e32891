package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// dialGRPC connects to the gRPC endpoint with insecure transport for local/dev.
func dialGRPC(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// NewHealthCommand constructs the `health` command, which queries the
// standard gRPC health service.
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("grpc")
			service, _ := cmd.Flags().GetString("service")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			conn, err := dialGRPC(addr)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			res, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: service})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "status:", res.GetStatus())
			if res.GetStatus() != healthpb.HealthCheckResponse_SERVING {
				return fmt.Errorf("server at %s is %s", addr, res.GetStatus())
			}
			return nil
		},
	}
	cmd.Flags().String("grpc", grpcAddrFromEnv(), "gRPC server address")
	cmd.Flags().String("service", "", "Service name to check (empty = overall)")
	cmd.Flags().Duration("timeout", 3*time.Second, "Request timeout")
	return cmd
}
