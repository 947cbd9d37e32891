package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voydwalkr/fungible/internal/cmd/client/transports"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

// NewPairCommand constructs the `pair` command group and subcommands.
func NewPairCommand(baseURL BaseURLFunc, logger logpkg.Logger) *cobra.Command {
	pairCmd := &cobra.Command{Use: "pair", Short: "Pair index operations"}
	addTransportFlags(pairCmd, baseURL)
	pairCmd.AddCommand(
		newPairPutCommand(logger),
		newPairGetCommand(logger),
		newPairRemoveCommand(logger),
		newPairListCommand(logger),
	)
	return pairCmd
}

func parsePairArgs(args []string) (fungible.Pair, error) {
	base, err := fungible.Parse(args[0])
	if err != nil {
		return fungible.Pair{}, err
	}
	quote, err := fungible.Parse(args[1])
	if err != nil {
		return fungible.Pair{}, err
	}
	return fungible.NewPair(base, quote), nil
}

// newPairPutCommand constructs the `pair put` subcommand.
func newPairPutCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <base> <quote>",
		Short: "Index a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePairArgs(args)
			if err != nil {
				return err
			}
			contract, _ := cmd.Flags().GetString("contract")
			lp, _ := cmd.Flags().GetString("lp")
			kvs, _ := cmd.Flags().GetStringArray("labels")
			labels, err := parseLabels(kvs)
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				info, err := t.CreatePair(cmd.Context(), pairsvc.PairInfo{
					Pair: p, Contract: contract, LiquidityToken: lp, Labels: labels,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)
			})
		},
	}
	cmd.Flags().String("contract", "", "Pool contract address")
	cmd.Flags().String("lp", "", "Liquidity token address")
	cmd.Flags().StringArray("labels", nil, "Extra labels as key=value (repeatable)")
	return cmd
}

// newPairGetCommand constructs the `pair get` subcommand.
func newPairGetCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get <base> <quote>",
		Short: "Show a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePairArgs(args)
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				info, err := t.GetPair(cmd.Context(), p)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)
			})
		},
	}
}

// newPairRemoveCommand constructs the `pair rm` subcommand.
func newPairRemoveCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <base> <quote>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a pair",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePairArgs(args)
			if err != nil {
				return err
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				if err := t.RemovePair(cmd.Context(), p); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "removed", p)
				return nil
			})
		},
	}
}

// newPairListCommand constructs the `pair list` subcommand.
func newPairListCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pairs in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseStr, _ := cmd.Flags().GetString("base")
			kindStr, _ := cmd.Flags().GetString("kind")
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")
			kind, err := parseKindFlag(kindStr)
			if err != nil {
				return err
			}
			q := transports.PairQuery{Kind: kind, Filter: filter, Limit: limit}
			if baseStr != "" {
				base, err := fungible.Parse(baseStr)
				if err != nil {
					return err
				}
				q.Base = &base
			}
			return withTransport(cmd, logger, func(t transports.RegistryTransport) error {
				list, err := t.ListPairs(cmd.Context(), q)
				if err != nil {
					return err
				}
				if list == nil {
					list = []pairsvc.PairInfo{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().String("base", "", "Only pairs with this base identifier")
	cmd.Flags().String("kind", "", "Only pairs whose base has this kind: coin|token")
	cmd.Flags().String("filter", "", "CEL filter over kind, name, display, quote_*, json")
	cmd.Flags().Int("limit", 0, "Maximum results (0 = server maximum)")
	return cmd
}
