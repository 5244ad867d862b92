package vaa

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/types"
)

// maxRandomSequence bounds the sequence of generated VAAs when none is given.
const maxRandomSequence = 100_000_000

// generateOptions are the flags shared by every generate subcommand.
type generateOptions struct {
	guardianSecrets string
	sequence        uint64
}

func buildGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := cobra.Command{
		Use:   "generate",
		Short: "Generate signed VAAs (devnet and testnet only)",
		Long: `Builds a payload, wraps it in an envelope and signs it with the guardian keys given with
--guardian-secret or the GUARDIAN_SECRETS variable. The VAA is printed in hex.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.guardianSecrets, "guardian-secret", "g", "", "Guardians' secret keys (CSV)")
	cmd.PersistentFlags().Uint64Var(&opts.sequence, "sequence", 0, "Sequence of the VAA (random when not set)")

	cmd.AddCommand(buildGenerateRegistrationCmd(opts))
	cmd.AddCommand(buildGenerateUpgradeCmd(opts))
	cmd.AddCommand(buildGenerateAttestationCmd(opts))
	cmd.AddCommand(buildGenerateGuardianSetUpgradeCmd(opts))
	cmd.AddCommand(buildGenerateRecoverChainIDCmd(opts))
	cmd.AddCommand(buildGenerateSetMessageFeeCmd(opts))
	cmd.AddCommand(buildGenerateTransferFeesCmd(opts))

	return &cmd
}

// emit signs the VAA built by b and prints it.
func (o *generateOptions) emit(cmd *cobra.Command, b *vaa.Builder) error {
	signers, err := loadGuardianSigners(o.guardianSecrets)
	if err != nil {
		return err
	}

	sequence := o.sequence
	if !cmd.Flags().Changed("sequence") {
		sequence = rand.Uint64N(maxRandomSequence)
	}

	v, err := b.SetSequence(sequence).BuildSigned(signers)
	if err != nil {
		return err
	}

	raw, err := v.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(raw))

	return nil
}

// governance wraps p in a VAA from the governance emitter.
func (o *generateOptions) governance(cmd *cobra.Command, p payload.Payload) error {
	return o.emit(cmd, vaa.NewGovernanceBuilder().SetPayload(p))
}

func parseModule(name string, allowed ...payload.Module) (payload.Module, error) {
	for _, m := range allowed {
		if strings.EqualFold(name, string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("invalid module %q, expected one of %v", name, allowed)
}

func parseChain(name string) (types.ChainID, error) {
	if name == "" {
		return types.ChainIDUnset, nil
	}

	return types.ChainIDFromString(name)
}

func parseUint256(name, value string) (*uint256.Int, error) {
	n, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}

	return n, nil
}

func buildGenerateRegistrationCmd(opts *generateOptions) *cobra.Command {
	var chainName, contractAddress, moduleName string

	cmd := cobra.Command{
		Use:   "registration",
		Short: "Generate a chain registration VAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := parseModule(moduleName, payload.TokenBridge, payload.NFTBridge)
			if err != nil {
				return err
			}
			chain, err := types.ChainIDFromString(chainName)
			if err != nil {
				return err
			}
			emitter, err := parseAddress(chain, contractAddress)
			if err != nil {
				return err
			}

			return opts.governance(cmd, &payload.RegisterChain{
				ModuleName:     module,
				EmitterChain:   chain,
				EmitterAddress: emitter,
			})
		},
	}

	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Chain to register")
	cmd.Flags().StringVarP(&contractAddress, "contract-address", "a", "", "Contract to register")
	cmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module to register (TokenBridge or NFTBridge)")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("contract-address")
	_ = cmd.MarkFlagRequired("module")

	return &cmd
}

func buildGenerateUpgradeCmd(opts *generateOptions) *cobra.Command {
	var chainName, contractAddress, moduleName string

	cmd := cobra.Command{
		Use:   "upgrade",
		Short: "Generate a contract upgrade VAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := parseModule(moduleName, payload.Core, payload.TokenBridge, payload.NFTBridge)
			if err != nil {
				return err
			}
			chain, err := types.ChainIDFromString(chainName)
			if err != nil {
				return err
			}
			contract, err := parseAddress(chain, contractAddress)
			if err != nil {
				return err
			}

			return opts.governance(cmd, &payload.ContractUpgrade{
				ModuleName:  module,
				Chain:       chain,
				NewContract: contract,
			})
		},
	}

	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Chain to upgrade")
	cmd.Flags().StringVarP(&contractAddress, "contract-address", "a", "", "Address of the new implementation")
	cmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module to upgrade (Core, TokenBridge or NFTBridge)")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("contract-address")
	_ = cmd.MarkFlagRequired("module")

	return &cmd
}

func buildGenerateAttestationCmd(opts *generateOptions) *cobra.Command {
	var (
		emitterChainName, emitterAddress string
		chainName, tokenAddress          string
		decimals                         int
		symbol, name                     string
	)

	cmd := cobra.Command{
		Use:   "attestation",
		Short: "Generate a token attestation VAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			emitterChain, err := types.ChainIDFromString(emitterChainName)
			if err != nil {
				return err
			}
			emitter, err := parseAddress(emitterChain, emitterAddress)
			if err != nil {
				return err
			}
			chain, err := types.ChainIDFromString(chainName)
			if err != nil {
				return err
			}
			token, err := parseAddress(chain, tokenAddress)
			if err != nil {
				return err
			}
			dec, err := safecast.IntToUint8(decimals)
			if err != nil {
				return fmt.Errorf("invalid decimals: %w", err)
			}

			b := vaa.NewBuilder().
				SetEmitter(emitterChain, emitter).
				SetNonce(1).
				SetPayload(&payload.AttestMeta{
					TokenAddress: token,
					TokenChain:   chain,
					Decimals:     dec,
					Symbol:       symbol,
					Name:         name,
				})

			return opts.emit(cmd, b)
		},
	}

	cmd.Flags().StringVarP(&emitterChainName, "emitter-chain", "e", "", "Emitter chain of the VAA")
	cmd.Flags().StringVarP(&emitterAddress, "emitter-address", "f", "", "Emitter address of the VAA")
	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Token's chain")
	cmd.Flags().StringVarP(&tokenAddress, "token-address", "a", "", "Token's address")
	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "Token's decimals")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Token's symbol")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Token's name")
	for _, flag := range []string{"emitter-chain", "emitter-address", "chain", "token-address", "decimals", "symbol", "name"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return &cmd
}

func buildGenerateGuardianSetUpgradeCmd(opts *generateOptions) *cobra.Command {
	var (
		chainName string
		index     uint32
		keys      []string
	)

	cmd := cobra.Command{
		Use:   "guardian-set-upgrade",
		Short: "Generate a guardian set upgrade VAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := parseChain(chainName)
			if err != nil {
				return err
			}

			p := &payload.GuardianSetUpgrade{Chain: chain, NewIndex: index}
			for _, key := range keys {
				if !common.IsHexAddress(key) {
					return fmt.Errorf("invalid guardian key %q", key)
				}
				p.Keys = append(p.Keys, common.HexToAddress(key))
			}

			return opts.governance(cmd, p)
		},
	}

	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Chain to upgrade (all chains when not set)")
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Index of the new guardian set")
	cmd.Flags().StringSliceVarP(&keys, "keys", "k", nil, "Addresses of the new guardians (CSV)")
	_ = cmd.MarkFlagRequired("index")
	_ = cmd.MarkFlagRequired("keys")

	return &cmd
}

func buildGenerateRecoverChainIDCmd(opts *generateOptions) *cobra.Command {
	var (
		moduleName string
		evmChainID string
		newChainID uint16
	)

	cmd := cobra.Command{
		Use:   "recover-chain-id",
		Short: "Generate a recover chain ID VAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := parseModule(moduleName, payload.Core, payload.TokenBridge, payload.NFTBridge)
			if err != nil {
				return err
			}
			id, err := parseUint256("evm chain id", evmChainID)
			if err != nil {
				return err
			}

			return opts.governance(cmd, &payload.RecoverChainID{
				ModuleName: module,
				EVMChainID: id,
				NewChainID: types.ChainID(newChainID),
			})
		},
	}

	cmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module to recover (Core, TokenBridge or NFTBridge)")
	cmd.Flags().StringVarP(&evmChainID, "evm-chain-id", "e", "", "EVM chain ID to set")
	cmd.Flags().Uint16VarP(&newChainID, "new-chain-id", "c", 0, "New chain ID to set")
	_ = cmd.MarkFlagRequired("module")
	_ = cmd.MarkFlagRequired("evm-chain-id")
	_ = cmd.MarkFlagRequired("new-chain-id")

	return &cmd
}

func buildGenerateSetMessageFeeCmd(opts *generateOptions) *cobra.Command {
	var chainName, fee string

	cmd := cobra.Command{
		Use:   "set-message-fee",
		Short: "Generate a VAA setting the message fee of the core contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := types.ChainIDFromString(chainName)
			if err != nil {
				return err
			}
			amount, err := parseUint256("fee", fee)
			if err != nil {
				return err
			}

			return opts.governance(cmd, &payload.SetMessageFee{Chain: chain, Fee: amount})
		},
	}

	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Chain of the core contract")
	cmd.Flags().StringVarP(&fee, "fee", "f", "", "New message fee in the chain's smallest unit")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("fee")

	return &cmd
}

func buildGenerateTransferFeesCmd(opts *generateOptions) *cobra.Command {
	var chainName, amount, recipient string

	cmd := cobra.Command{
		Use:   "transfer-fees",
		Short: "Generate a VAA transferring collected fees out of the core contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := types.ChainIDFromString(chainName)
			if err != nil {
				return err
			}
			value, err := parseUint256("amount", amount)
			if err != nil {
				return err
			}
			to, err := parseAddress(chain, recipient)
			if err != nil {
				return err
			}

			return opts.governance(cmd, &payload.TransferFees{Chain: chain, Amount: value, Recipient: to})
		},
	}

	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Chain of the core contract")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount to transfer in the chain's smallest unit")
	cmd.Flags().StringVarP(&recipient, "recipient", "r", "", "Recipient of the fees")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("recipient")

	return &cmd
}
