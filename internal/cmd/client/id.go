package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voydwalkr/fungible/pkg/fungible"
)

// NewIDCommand constructs the `id` command group.
func NewIDCommand() *cobra.Command {
	idCmd := &cobra.Command{Use: "id", Short: "Identifier operations"}
	idCmd.AddCommand(newIDParseCommand(), newIDSortCommand())
	return idCmd
}

type idInfo struct {
	Kind      string          `json:"kind"`
	Payload   string          `json:"payload"`
	Text      string          `json:"text"`
	JSON      json.RawMessage `json:"json"`
	KeyHex    string          `json:"key_hex"`
	KeyBase58 string          `json:"key_base58"`
}

func describe(id fungible.Fungible) (idInfo, error) {
	js, err := json.Marshal(id)
	if err != nil {
		return idInfo{}, err
	}
	hexKey, _ := encodeBytes("hex", id.Key())
	b58Key, _ := encodeBytes("base58", id.Key())
	return idInfo{
		Kind:      id.Kind().String(),
		Payload:   id.Payload(),
		Text:      id.String(),
		JSON:      js,
		KeyHex:    hexKey,
		KeyBase58: b58Key,
	}, nil
}

// newIDParseCommand constructs the `id parse` subcommand.
func newIDParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <Coin(name)|Token(address)>",
		Short: "Parse an identifier and show every encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := fungible.Parse(args[0])
			if err != nil {
				return err
			}
			info, err := describe(id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

// newIDSortCommand constructs the `id sort` subcommand.
func newIDSortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <id>...",
		Short: "Print identifiers in value order (Tokens before Coins)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]fungible.Fungible, 0, len(args))
			for _, a := range args {
				id, err := fungible.Parse(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			fungible.Sort(ids)
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
