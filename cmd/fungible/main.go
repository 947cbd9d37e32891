package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	clientcmd "github.com/voydwalkr/fungible/internal/cmd/client"
	serverrun "github.com/voydwalkr/fungible/internal/cmd/server"
	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

func main() {
	// CLI logger; FUNGIBLE_LOG_LEVEL applies to both client commands and server start.
	level, err := logpkg.ParseLevel(os.Getenv("FUNGIBLE_LOG_LEVEL"))
	if err != nil {
		level = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	rootCmd := clientcmd.NewRoot(apiURL, logger)
	rootCmd.Long = "fungible parses, encodes and orders Coin/Token identifiers and runs the asset and pair registry."

	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverCmd.AddCommand(newServerStartCommand())
	rootCmd.AddCommand(serverCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newServerStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the registry server (gRPC and HTTP)",
		Aliases: []string{"run"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(path)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)

			// Flags override file and environment only when set explicitly.
			flags := cmd.Flags()
			if flags.Changed("data-dir") {
				cfg.DataDir, _ = flags.GetString("data-dir")
			}
			if flags.Changed("http") {
				cfg.HTTPAddr, _ = flags.GetString("http")
			}
			if flags.Changed("grpc") {
				cfg.GRPCAddr, _ = flags.GetString("grpc")
			}
			if flags.Changed("fsync") {
				cfg.Fsync, _ = flags.GetString("fsync")
			}
			if flags.Changed("fsync-interval-ms") {
				cfg.FsyncIntervalMs, _ = flags.GetInt("fsync-interval-ms")
			}
			if flags.Changed("log-level") {
				cfg.Log.Level, _ = flags.GetString("log-level")
			}
			if flags.Changed("log-format") {
				cfg.Log.Format, _ = flags.GetString("log-format")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if err := serverrun.Run(ctx, serverrun.Options{Config: cfg}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("config", os.Getenv("FUNGIBLE_CONFIG"), "Config file (.json, .yaml)")
	cmd.Flags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	cmd.Flags().String("grpc", ":50051", "gRPC listen address")
	cmd.Flags().String("http", ":8080", "HTTP listen address")
	cmd.Flags().String("fsync", "always", "Fsync mode: always|interval|never")
	cmd.Flags().Int("fsync-interval-ms", 5, "When --fsync=interval, group-commit window in ms")
	cmd.Flags().String("log-level", "info", "Log level: debug|info|warn|error")
	cmd.Flags().String("log-format", "text", "Log format: text|json")
	return cmd
}

func apiURL() string {
	if v := os.Getenv("FUNGIBLE_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
