package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voydwalkr/fungible/internal/store"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// NewKeyCommand constructs the `key` command group.
func NewKeyCommand() *cobra.Command {
	keyCmd := &cobra.Command{Use: "key", Short: "Binary key encoding"}
	keyCmd.AddCommand(newKeyEncodeCommand(), newKeyDecodeCommand())
	return keyCmd
}

// newKeyEncodeCommand constructs the `key encode` subcommand. With --quote it
// prints the full segmented store key of the pair.
func newKeyEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <id>",
		Short: "Encode an identifier (or a pair with --quote) as a binary key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			quoteText, _ := cmd.Flags().GetString("quote")
			ns, _ := cmd.Flags().GetString("namespace")

			id, err := fungible.Parse(args[0])
			if err != nil {
				return err
			}
			key := id.Key()
			if quoteText != "" {
				quote, err := fungible.Parse(quoteText)
				if err != nil {
					return err
				}
				if key, err = store.JoinKey([]byte(ns), fungible.NewPair(id, quote).KeySegments()); err != nil {
					return err
				}
			}
			out, err := encodeBytes(format, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("format", "hex", "Output format: hex|base58")
	cmd.Flags().String("quote", "", "Quote identifier; encodes the (id, quote) pair store key")
	cmd.Flags().String("namespace", "pairs", "Store namespace used with --quote")
	return cmd
}

// newKeyDecodeCommand constructs the `key decode` subcommand.
func newKeyDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <encoded>",
		Short: "Decode a binary identifier key (or a pair store key with --pair)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			asPair, _ := cmd.Flags().GetBool("pair")

			b, err := decodeBytes(format, args[0])
			if err != nil {
				return fmt.Errorf("invalid %s input: %w", format, err)
			}
			if !asPair {
				id, err := fungible.DecodeKey(b)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}
			ns, segs, err := store.SplitKey(b, store.PairKeys.Segments)
			if err != nil {
				return err
			}
			p, err := store.PairKeys.Decode(segs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"namespace": string(ns), "pair": p.String()})
		},
	}
	cmd.Flags().String("format", "hex", "Input format: hex|base58")
	cmd.Flags().Bool("pair", false, "Decode a segmented pair store key")
	return cmd
}
