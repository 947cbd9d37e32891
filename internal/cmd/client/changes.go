package client

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/voydwalkr/fungible/internal/cmd/client/transports"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// NewChangesCommand constructs the `changes` command, which reads the
// registry change feed.
func NewChangesCommand(baseURL BaseURLFunc, logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changes",
		Short: "Read the registry change feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			after, _ := cmd.Flags().GetUint64("after")
			limit, _ := cmd.Flags().GetInt("limit")
			follow, _ := cmd.Flags().GetBool("follow")
			wait, _ := cmd.Flags().GetDuration("wait")

			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				ctx := cmd.Context()
				if !follow {
					page, err := t.Changes(ctx, after, limit, 0)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), page)
				}
				// One JSON object per line until interrupted.
				enc := json.NewEncoder(cmd.OutOrStdout())
				for ctx.Err() == nil {
					page, err := t.Changes(ctx, after, limit, wait)
					if err != nil {
						if ctx.Err() != nil {
							return nil
						}
						return err
					}
					for _, c := range page.Changes {
						if err := enc.Encode(c); err != nil {
							return err
						}
					}
					after = page.Next
				}
				return nil
			})
		},
	}
	addTransportFlags(cmd, baseURL)
	cmd.Flags().Uint64("after", 0, "Last sequence already seen; 0 starts at the oldest retained change")
	cmd.Flags().Int("limit", 0, "Maximum changes per read (0 = server maximum)")
	cmd.Flags().Bool("follow", false, "Keep reading and print each change as it arrives")
	cmd.Flags().Duration("wait", 10*time.Second, "Long-poll window per read with --follow")
	return cmd
}
