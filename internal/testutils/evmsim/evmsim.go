// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

const (
	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// SimulatedChain represents a simulated chain with a backend and a list of funded relayers.
type SimulatedChain struct {
	Backend  *simulated.Backend
	Relayers []*Relayer
}

// Relayer is a funded account that pays for VAA submissions.
type Relayer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the relayer's private key and sets default
// values.
func (s *Relayer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the relayer's private key.
func (s *Relayer) Address() common.Address {
	return crypto.PubkeyToAddress(s.PrivateKey.PublicKey)
}

// NewSimulatedChain creates a new simulated chain with the given number of funded relayers.
func NewSimulatedChain(t *testing.T, numRelayers uint64) SimulatedChain {
	t.Helper()

	relayers := make([]*Relayer, 0, numRelayers)
	for range numRelayers {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		relayers = append(relayers, &Relayer{PrivateKey: key})
	}

	// Setup the simulated backend
	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, r := range relayers {
		genesisAlloc[r.Address()] = gethTypes.Account{
			Balance: big.NewInt(DefaultBalance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend:  sim,
		Relayers: relayers,
	}
}

// MineAndReceipt mines a block and returns the receipt of tx.
func (s *SimulatedChain) MineAndReceipt(t *testing.T, tx *gethTypes.Transaction) *gethTypes.Receipt {
	t.Helper()

	s.Backend.Commit()

	receipt, err := s.Backend.Client().TransactionReceipt(context.Background(), tx.Hash())
	require.NoError(t, err)

	return receipt
}
