package vaa

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	aptoscrypto "github.com/aptos-labs/aptos-go-sdk/crypto"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cobra"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	sdkaptos "github.com/wormhole-foundation/vaa/sdk/aptos"
	"github.com/wormhole-foundation/vaa/sdk/evm"
	sdksolana "github.com/wormhole-foundation/vaa/sdk/solana"
	"github.com/wormhole-foundation/vaa/types"
)

func buildSubmitCmd() *cobra.Command {
	var (
		network         string
		chainName       string
		contractAddress string
		rpcURL          string
	)

	cmd := cobra.Command{
		Use:   "submit <vaa>",
		Short: "Submit a VAA to the contract that consumes it",
		Long: `Decodes the VAA and submits it to its target chain. VAAs that do not name a target chain,
such as chain registrations, need --chain. When both are present they must agree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, err := decodeVAAArg(args[0])
			if err != nil {
				return err
			}

			m, err := vaa.Decode(raw)
			if err != nil {
				return err
			}

			var override *types.ChainID
			if chainName != "" {
				chain, err := types.ChainIDFromString(chainName)
				if err != nil {
					return err
				}
				override = &chain
			}

			chain, err := vaa.ResolveTarget(m.Payload, override)
			if err != nil {
				return err
			}

			conn, err := resolveConnection(Network(network), chain, m.Payload.Module(), contractAddress, rpcURL)
			if err != nil {
				return err
			}

			client, err := newChainClient(cmd, conn)
			if err != nil {
				return err
			}
			defer client.Close()

			res, err := vaa.NewDispatcher().Register(chain, client.submitter).Dispatch(ctx, m, raw, override)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transaction sent: %s\n", res.Hash)
			if client.confirm != nil {
				return client.confirm(res.Hash)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "Network to submit to (mainnet, testnet or devnet)")
	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "Target chain, required when the VAA does not name one")
	cmd.Flags().StringVarP(&contractAddress, "contract-address", "a", "", "Contract to submit the VAA to (overrides the network config)")
	cmd.Flags().StringVar(&rpcURL, "rpc", "", "RPC endpoint (overrides the network config)")
	_ = cmd.MarkFlagRequired("network")

	return &cmd
}

// chainClient is a submitter connected to one chain. confirm, when not nil, waits for a submitted
// transaction to be final.
type chainClient struct {
	submitter sdk.Submitter
	confirm   func(hash string) error
	close     func()
}

// Close releases the connection of the client.
func (c *chainClient) Close() {
	if c.close != nil {
		c.close()
	}
}

// newChainClient connects to the chain of conn.
func newChainClient(cmd *cobra.Command, conn Connection) (*chainClient, error) {
	family, err := conn.Chain.Family()
	if err != nil {
		return nil, err
	}

	switch family {
	case chainsel.FamilyEVM:
		return newEVMClient(cmd, conn)
	case chainsel.FamilySolana:
		s, err := newSolanaSubmitter(conn)
		if err != nil {
			return nil, err
		}

		return &chainClient{submitter: s}, nil
	case chainsel.FamilyAptos:
		s, err := newAptosSubmitter(conn)
		if err != nil {
			return nil, err
		}

		return &chainClient{submitter: s}, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedChainFamily, family)
	}
}

func newEVMClient(cmd *cobra.Command, conn Connection) (*chainClient, error) {
	ctx := cmd.Context()

	pk, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, conn.RPC)
	if err != nil {
		return nil, err
	}

	s, confirm, err := newEVMSubmitter(cmd, client, pk, conn)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &chainClient{submitter: s, confirm: confirm, close: client.Close}, nil
}

func newEVMSubmitter(
	cmd *cobra.Command, client *ethclient.Client, pk *ecdsa.PrivateKey, conn Connection,
) (sdk.Submitter, func(string) error, error) {
	ctx := cmd.Context()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to get chain id: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(pk, chainID)
	if err != nil {
		return nil, nil, err
	}

	var contracts evm.Contracts
	for m, addr := range conn.Contracts {
		if !common.IsHexAddress(addr) {
			return nil, nil, fmt.Errorf("invalid %s contract address %q", m, addr)
		}
		switch m {
		case payload.Core:
			contracts.Core = common.HexToAddress(addr)
		case payload.TokenBridge:
			contracts.TokenBridge = common.HexToAddress(addr)
		case payload.NFTBridge:
			contracts.NFTBridge = common.HexToAddress(addr)
		}
	}

	confirm := func(hash string) error {
		receipt, err := confirmEVM(ctx, client, hash)
		if err != nil {
			return err
		}
		if receipt.Status != 1 {
			return fmt.Errorf("transaction %s reverted", hash)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Transaction mined in block %s\n", receipt.BlockNumber)

		return nil
	}

	return evm.NewSubmitter(client, auth, contracts), confirm, nil
}

func newSolanaSubmitter(conn Connection) (sdk.Submitter, error) {
	secret, err := requireEnv(envSolanaKey)
	if err != nil {
		return nil, err
	}

	auth, err := solana.PrivateKeyFromBase58(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envSolanaKey, err)
	}

	var programs sdksolana.Programs
	for m, addr := range conn.Contracts {
		key, err := solana.PublicKeyFromBase58(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s program id %q: %w", m, addr, err)
		}
		switch m {
		case payload.Core:
			programs.Core = key
		case payload.TokenBridge:
			programs.TokenBridge = key
		case payload.NFTBridge:
			programs.NFTBridge = key
		}
	}

	return sdksolana.NewSubmitter(rpc.New(conn.RPC), auth, programs), nil
}

func newAptosSubmitter(conn Connection) (sdk.Submitter, error) {
	secret, err := requireEnv(envAptosKey)
	if err != nil {
		return nil, err
	}

	keyBytes, err := hex.DecodeString(trimHexPrefix(secret))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envAptosKey, err)
	}
	key := &aptoscrypto.Ed25519PrivateKey{}
	if err := key.FromBytes(keyBytes); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envAptosKey, err)
	}
	auth, err := aptos.NewAccountFromSigner(key)
	if err != nil {
		return nil, err
	}

	var contracts sdkaptos.Contracts
	for m, addr := range conn.Contracts {
		parsed, err := sdkaptos.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s address %q: %w", m, addr, err)
		}
		switch m {
		case payload.Core:
			contracts.Core = parsed
		case payload.TokenBridge:
			contracts.TokenBridge = parsed
		case payload.NFTBridge:
			contracts.NFTBridge = parsed
		}
	}

	client, err := aptos.NewClient(aptos.NetworkConfig{NodeUrl: conn.RPC})
	if err != nil {
		return nil, err
	}

	return sdkaptos.NewSubmitter(client, auth, contracts), nil
}
