package vaa

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/wormhole-foundation/vaa"
)

func buildParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <vaa>",
		Short: "Parse a VAA (can be in either hex or base64 format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeVAAArg(args[0])
			if err != nil {
				return err
			}

			m, err := vaa.Decode(raw)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}

func buildRecoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <digest> <signature>",
		Short: "Recover an address from a signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hex.DecodeString(trimHexPrefix(args[0]))
			if err != nil || len(digest) != common.HashLength {
				return fmt.Errorf("invalid digest %q", args[0])
			}

			sig, err := hex.DecodeString(trimHexPrefix(args[1]))
			if err != nil {
				return fmt.Errorf("invalid signature %q: %w", args[1], err)
			}

			addr, err := vaa.RecoverAddress(common.BytesToHash(digest), sig)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), addr.Hex())

			return nil
		},
	}
}
