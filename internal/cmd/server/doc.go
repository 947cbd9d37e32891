// Package serverrun exposes a shared Run entrypoint used by the CLI to start
// the fungible registry with gRPC and HTTP servers, handling lifecycle and
// shutdown.
//
// Example:
//
//	cfg := config.Default()
//	cfg.DataDir = "./data"
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//	_ = serverrun.Run(ctx, serverrun.Options{Config: cfg})
package serverrun
