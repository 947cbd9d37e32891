package client

import (
	"github.com/spf13/cobra"

	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// NewRoot constructs a root Cobra command for the client.
// It registers the id, key, asset, pair, changes and health commands.
func NewRoot(baseURL BaseURLFunc, logger logpkg.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "fungible",
		Short:         "Fungible asset identifier tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		NewIDCommand(),
		NewKeyCommand(),
		NewAssetCommand(baseURL, logger),
		NewPairCommand(baseURL, logger),
		NewChangesCommand(baseURL, logger),
		NewHealthCommand(),
	)
	return root
}
