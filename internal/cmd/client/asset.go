package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voydwalkr/fungible/internal/cmd/client/transports"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// NewAssetCommand constructs the `asset` command group and subcommands.
func NewAssetCommand(baseURL BaseURLFunc, logger logpkg.Logger) *cobra.Command {
	assetCmd := &cobra.Command{Use: "asset", Short: "Asset registry operations"}
	addTransportFlags(assetCmd, baseURL)
	assetCmd.AddCommand(
		newAssetPutCommand(logger),
		newAssetGetCommand(logger),
		newAssetRemoveCommand(logger),
		newAssetListCommand(logger),
	)
	return assetCmd
}

// newAssetPutCommand constructs the `asset put` subcommand.
func newAssetPutCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <id>",
		Short: "Register or update an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := fungible.Parse(args[0])
			if err != nil {
				return err
			}
			symbol, _ := cmd.Flags().GetString("symbol")
			decimals, _ := cmd.Flags().GetUint8("decimals")
			label, _ := cmd.Flags().GetString("label")
			kvs, _ := cmd.Flags().GetStringArray("labels")
			labels, err := parseLabels(kvs)
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				a, err := t.PutAsset(cmd.Context(), assetsvc.Asset{
					ID: id, Symbol: symbol, Decimals: decimals, Label: label, Labels: labels,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), a)
			})
		},
	}
	cmd.Flags().String("symbol", "", "Ticker symbol")
	cmd.Flags().Uint8("decimals", 0, "Decimal places")
	cmd.Flags().String("label", "", "Display label")
	cmd.Flags().StringArray("labels", nil, "Extra labels as key=value (repeatable)")
	return cmd
}

// newAssetGetCommand constructs the `asset get` subcommand.
func newAssetGetCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := fungible.Parse(args[0])
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				a, err := t.GetAsset(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), a)
			})
		},
	}
}

// newAssetRemoveCommand constructs the `asset rm` subcommand.
func newAssetRemoveCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an asset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := fungible.Parse(args[0])
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				if err := t.RemoveAsset(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "removed", id)
				return nil
			})
		},
	}
}

// newAssetListCommand constructs the `asset list` subcommand.
func newAssetListCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kindStr, _ := cmd.Flags().GetString("kind")
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")
			order, _ := cmd.Flags().GetString("order")
			kind, err := parseKindFlag(kindStr)
			if err != nil {
				return err
			}
			if order != "store" && order != "value" {
				return fmt.Errorf("invalid --order %q; use store|value", order)
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				list, err := t.ListAssets(cmd.Context(), transports.AssetQuery{
					Kind: kind, Filter: filter, Limit: limit, ValueOrder: order == "value",
				})
				if err != nil {
					return err
				}
				if list == nil {
					list = []assetsvc.Asset{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().String("kind", "", "Only this kind: coin|token")
	cmd.Flags().String("filter", "", "CEL filter over kind, name, display, json")
	cmd.Flags().Int("limit", 0, "Maximum results (0 = server maximum)")
	cmd.Flags().String("order", "store", "Ordering: store (Coins first) | value (Tokens first)")
	return cmd
}
