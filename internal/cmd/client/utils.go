package client

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/cmd/client/transports"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag). An
// empty result selects the local transport.
type BaseURLFunc func() string

// grpcAddrFromEnv returns the gRPC server address from FUNGIBLE_GRPC or a default.
func grpcAddrFromEnv() string {
	if addr := os.Getenv("FUNGIBLE_GRPC"); addr != "" {
		return addr
	}
	return "127.0.0.1:50051"
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func encodeBytes(format string, b []byte) (string, error) {
	switch strings.ToLower(format) {
	case "", "hex":
		return hex.EncodeToString(b), nil
	case "base58":
		return base58.Encode(b), nil
	default:
		return "", fmt.Errorf("unknown format %q; use hex|base58", format)
	}
}

func decodeBytes(format, s string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "hex":
		return hex.DecodeString(s)
	case "base58":
		return base58.Decode(s)
	default:
		return nil, fmt.Errorf("unknown format %q; use hex|base58", format)
	}
}

func parseKindFlag(s string) (*fungible.Kind, error) {
	if s == "" {
		return nil, nil
	}
	k, ok := fungible.ParseKind(s)
	if !ok {
		return nil, fmt.Errorf("invalid --kind %q; use coin|token", s)
	}
	return &k, nil
}

func parseLabels(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --label %q; use key=value", kv)
		}
		out[k] = v
	}
	return out, nil
}

// addTransportFlags registers the flags read by openTransport.
func addTransportFlags(cmd *cobra.Command, baseURL BaseURLFunc) {
	def := ""
	if baseURL != nil {
		def = baseURL()
	}
	cmd.PersistentFlags().String("server", def, "HTTP API base URL; empty opens --data-dir directly")
	cmd.PersistentFlags().String("data-dir", "", "Data directory for local access (default: config or OS-specific location)")
	cmd.PersistentFlags().String("config", "", "Config file (.json, .yaml) for local access")
}

// openTransport picks the local transport when --data-dir or --config is given
// without an explicit --server, or when --server is empty. Otherwise it talks
// HTTP.
func openTransport(cmd *cobra.Command, logger logpkg.Logger) (transports.RegistryTransport, error) {
	flags := cmd.Flags()
	server, _ := flags.GetString("server")
	local := !flags.Changed("server") && (flags.Changed("data-dir") || flags.Changed("config"))
	if server != "" && !local {
		return transports.NewHTTPTransport(server, nil), nil
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cfgpkg.Load(path)
	if err != nil {
		return nil, err
	}
	cfgpkg.FromEnv(&cfg)
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if logger == nil {
		logger = logpkg.NewNopLogger()
	}
	return transports.OpenLocal(cfg, logger)
}

// withTransport opens a transport for the duration of fn.
func withTransport(cmd *cobra.Command, logger logpkg.Logger, fn func(transports.RegistryTransport) error) (err error) {
	t, err := openTransport(cmd, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(t)
}
