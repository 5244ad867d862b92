package vaa

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/types"
)

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// chainConfig is the default connection of a chain and the wormhole contracts deployed on it, in
// the chain's native address format.
type chainConfig struct {
	RPC       string
	Contracts map[payload.Module]string
}

func contracts(core, tokenBridge, nftBridge string) map[payload.Module]string {
	return map[payload.Module]string{
		payload.Core:        core,
		payload.TokenBridge: tokenBridge,
		payload.NFTBridge:   nftBridge,
	}
}

var networks = map[Network]map[types.ChainID]chainConfig{
	Mainnet: {
		types.ChainIDSolana: {
			RPC: "https://api.mainnet-beta.solana.com",
			Contracts: contracts(
				"worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth",
				"wormDTUJ6AWPNvk59vGQbDvGJmqbDTdgWgAqcLBCgUb",
				"WnFt12ZrnzZrFZkt2xsNsaNWoQribnuQ5B5FrDbwDhD",
			),
		},
		types.ChainIDEthereum: {
			RPC: "https://ethereum-rpc.publicnode.com",
			Contracts: contracts(
				"0x98f3c9e6E3fAce36bAAd05FE09d375Ef1464288B",
				"0x3ee18B2214AFF97000D974cf647E7C347E8fa585",
				"0x6FFd7EdE62328b3Af38FCD61461Bbfc52F5651fE",
			),
		},
		types.ChainIDBSC: {
			RPC: "https://bsc-rpc.publicnode.com",
			Contracts: contracts(
				"0x98f3c9e6E3fAce36bAAd05FE09d375Ef1464288B",
				"0xB6F6D86a8f9879A9c87f643768d9efc38c1Da6E7",
				"0x5a58505a96D1dbf8dF91cB21B54419FC36e93fdE",
			),
		},
		types.ChainIDPolygon: {
			RPC: "https://rpc.ankr.com/polygon",
			Contracts: contracts(
				"0x7A4B5a56256163F07b2C80A7cA55aBE66c4ec4d7",
				"0x5a58505a96D1dbf8dF91cB21B54419FC36e93fdE",
				"0x90BBd86a6Fe93D3bc3ed6335935447E75fAb7fCf",
			),
		},
		types.ChainIDAvalanche: {
			RPC: "https://rpc.ankr.com/avalanche",
			Contracts: contracts(
				"0x54a8e5f9c4CbA08F9943965859F6c34eAF03E26c",
				"0x0e082F06FF657D94310cB8cE8B0D9a04541d8052",
				"0xf7B6737Ca9c4e08aE573F75A97B73D7a813f5De5",
			),
		},
		types.ChainIDAptos: {
			RPC: "https://fullnode.mainnet.aptoslabs.com/v1",
			Contracts: contracts(
				"0x5bc11445584a763c1fa7ed39081f1b920954da14e04b32440cba863d03e19625",
				"0x576410486a2da45eee6c949c995670112ddf2fbeedab20350d506328eefc9d4f",
				"0x1bdffae984043833ed7fe223f7af7a3f8902d04129b14f801823e64827da7130",
			),
		},
	},
	Testnet: {
		types.ChainIDSolana: {
			RPC: "https://api.devnet.solana.com",
			Contracts: contracts(
				"3u8hJUVTA4jH1wYAyUur7FFZVQ8H635K3tSHHF4ssjQ5",
				"DZnkkTmCiFWfYTfT41X3Rd1kDgozqzxWaHqsw6W4x2oe",
				"2rHhojZ7hpu1zA91nvZmT8TqWWvMcKmmNBCr2mKTtMq4",
			),
		},
		types.ChainIDSepolia: {
			RPC: "https://ethereum-sepolia-rpc.publicnode.com",
			Contracts: contracts(
				"0x4a8bc80Ed5a4067f1CCf107057b8270E0cC11A78",
				"0xDB5492265f6038831E89f495670FF909aDe94bd9",
				"0x6a0B52ac198e4870e5F3797d5B403838a5bbFD99",
			),
		},
		types.ChainIDAptos: {
			RPC: "https://fullnode.testnet.aptoslabs.com/v1",
			Contracts: contracts(
				"0x5bc11445584a763c1fa7ed39081f1b920954da14e04b32440cba863d03e19625",
				"0x576410486a2da45eee6c949c995670112ddf2fbeedab20350d506328eefc9d4f",
				"0x1bdffae984043833ed7fe223f7af7a3f8902d04129b14f801823e64827da7130",
			),
		},
	},
	Devnet: {
		types.ChainIDSolana: {
			RPC: "http://localhost:8899",
			Contracts: contracts(
				"Bridge1p5gheXUvJ6jGWGeCsgPKgnE3YgdGKRVCMY9o",
				"B6RHG3mfcckmrYN1UhmJzyS1XX3fZKbkeUcpJe9Sy3FE",
				"NFTWqJR8YnRVqPDvTJrYuLrQDitTG5AScqbeghi4zSA",
			),
		},
		types.ChainIDEthereum: {
			RPC: "http://localhost:8545",
			Contracts: contracts(
				"0xC89Ce4735882C9F0f0FE26686c53074E09B0D550",
				"0x0290FB167208Af455bB137780163b7B7a9a10C16",
				"0x26b4afb60d6c903165150c6f0aa14f8016be4aec",
			),
		},
		types.ChainIDAptos: {
			RPC: "http://localhost:8080/v1",
			Contracts: contracts(
				"0xde0036a9600559e295d5f6802ef6f3f802f510366e0c23912b0655d972166017",
				"0x84a5f374d29fc77e370014dce4fd6a55b58ad608de8074b0be5571701724da31",
				"0x46da3d4c569388af61f951bdd1153f4c875f90c2991f6b2d0a38e2161a40852c",
			),
		},
	},
}

// Connection is the resolved endpoint and contracts used to submit to one chain.
type Connection struct {
	Network   Network                   `validate:"oneof=mainnet testnet devnet"`
	Chain     types.ChainID             `validate:"required"`
	RPC       string                    `validate:"required,url"`
	Contracts map[payload.Module]string `validate:"dive,required"`
}

// rpcEnvKey is the environment variable that overrides the rpc of chain, e.g. ETHEREUM_RPC.
func rpcEnvKey(chain types.ChainID) string {
	return strings.ToUpper(chain.String()) + "_RPC"
}

// resolveConnection looks up the configuration of chain on network and applies the overrides. rpc
// takes precedence over the <CHAIN>_RPC variable. contractAddress replaces the contract of module.
func resolveConnection(
	network Network, chain types.ChainID, module payload.Module, contractAddress string, rpc string,
) (Connection, error) {
	chains, ok := networks[network]
	if !ok {
		return Connection{}, fmt.Errorf("unknown network: %s", network)
	}

	conn := Connection{
		Network:   network,
		Chain:     chain,
		Contracts: map[payload.Module]string{},
	}
	if cfg, ok := chains[chain]; ok {
		conn.RPC = cfg.RPC
		for m, addr := range cfg.Contracts {
			conn.Contracts[m] = addr
		}
	}

	if err := loadEnv(); err != nil {
		return Connection{}, err
	}
	if env := os.Getenv(rpcEnvKey(chain)); env != "" {
		conn.RPC = env
	}
	if rpc != "" {
		conn.RPC = rpc
	}
	if contractAddress != "" {
		conn.Contracts[module] = contractAddress
	}

	if err := validator.New().Struct(conn); err != nil {
		return Connection{}, fmt.Errorf("invalid configuration for %s on %s: %w", chain, network, err)
	}

	return conn, nil
}
