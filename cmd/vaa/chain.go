package vaa

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/types"
)

func buildChainIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain-id <chain>",
		Short: "Print the wormhole chain ID integer associated with the specified chain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := types.ChainIDFromString(args[0])
			if err != nil {
				return err
			}
			if !chain.IsKnown() {
				return fmt.Errorf("%w: %q", types.ErrUnknownChain, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), uint16(chain))

			return nil
		},
	}
}

func buildContractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract <network> <chain> <module>",
		Short: "Print the address of a contract in the network config",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			chains, ok := networks[Network(args[0])]
			if !ok {
				return fmt.Errorf("unknown network: %s", args[0])
			}
			chain, err := types.ChainIDFromString(args[1])
			if err != nil {
				return err
			}
			module, err := parseModule(args[2], payload.Core, payload.TokenBridge, payload.NFTBridge)
			if err != nil {
				return err
			}

			addr := chains[chain].Contracts[module]
			if addr == "" {
				return fmt.Errorf("no %s contract configured for %s on %s", module, chain, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), addr)

			return nil
		},
	}
}
