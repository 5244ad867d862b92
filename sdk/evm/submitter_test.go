package evm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/vaa/internal/testutils/evmsim"
	"github.com/wormhole-foundation/vaa/payload"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/sdk/evm/bindings"
	"github.com/wormhole-foundation/vaa/types"
)

func TestMethodFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		give       payload.Payload
		wantModule payload.Module
		wantMethod string
	}{
		{
			name:       "guardian set upgrade",
			give:       &payload.GuardianSetUpgrade{NewIndex: 1},
			wantModule: payload.Core,
			wantMethod: "submitNewGuardianSet",
		},
		{
			name:       "core contract upgrade",
			give:       &payload.ContractUpgrade{ModuleName: payload.Core, Chain: types.ChainIDEthereum},
			wantModule: payload.Core,
			wantMethod: "submitContractUpgrade",
		},
		{
			name:       "token bridge contract upgrade",
			give:       &payload.ContractUpgrade{ModuleName: payload.TokenBridge, Chain: types.ChainIDEthereum},
			wantModule: payload.TokenBridge,
			wantMethod: "upgrade",
		},
		{
			name:       "nft bridge register chain",
			give:       &payload.RegisterChain{ModuleName: payload.NFTBridge, EmitterChain: types.ChainIDSolana},
			wantModule: payload.NFTBridge,
			wantMethod: "registerChain",
		},
		{
			name:       "token bridge recover chain id",
			give:       &payload.RecoverChainID{ModuleName: payload.TokenBridge, EVMChainID: uint256.NewInt(1), NewChainID: 2},
			wantModule: payload.TokenBridge,
			wantMethod: "submitRecoverChainId",
		},
		{
			name:       "set message fee",
			give:       &payload.SetMessageFee{Chain: types.ChainIDEthereum},
			wantModule: payload.Core,
			wantMethod: "submitSetMessageFee",
		},
		{
			name:       "transfer fees",
			give:       &payload.TransferFees{Chain: types.ChainIDEthereum},
			wantModule: payload.Core,
			wantMethod: "submitTransferFees",
		},
		{
			name:       "attest meta",
			give:       &payload.AttestMeta{TokenChain: types.ChainIDSolana},
			wantModule: payload.TokenBridge,
			wantMethod: "createWrapped",
		},
		{
			name:       "transfer",
			give:       &payload.Transfer{ToChain: types.ChainIDEthereum},
			wantModule: payload.TokenBridge,
			wantMethod: "completeTransfer",
		},
		{
			name:       "transfer with payload",
			give:       &payload.TransferWithPayload{ToChain: types.ChainIDEthereum},
			wantModule: payload.TokenBridge,
			wantMethod: "completeTransferWithPayload",
		},
		{
			name:       "nft transfer",
			give:       &payload.NFTTransfer{ToChain: types.ChainIDEthereum},
			wantModule: payload.NFTBridge,
			wantMethod: "completeTransfer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := methodFor(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModule, got.module)
			assert.Equal(t, tt.wantMethod, got.name)
			assert.NotEmpty(t, got.action)
		})
	}
}

func TestMethodFor_Unrecognized(t *testing.T) {
	t.Parallel()

	_, err := methodFor(&payload.Unrecognized{Raw: []byte{0xaa}})

	var unsupported *sdkerrors.UnsupportedPayloadError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, chainsel.FamilyEVM, unsupported.ChainFamily)
}

func TestSubmitter_Submit(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	tokenBridge := common.HexToAddress("0x0290FB167208Af455bB137780163b7B7a9a10C16")
	raw := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xaa}

	submitter := NewSubmitter(sim.Backend.Client(), sim.Relayers[0].NewTransactOpts(t), Contracts{TokenBridge: tokenBridge})

	res, err := submitter.Submit(context.Background(), types.ChainIDEthereum,
		&payload.RegisterChain{ModuleName: payload.TokenBridge, EmitterChain: types.ChainIDSolana}, raw)
	require.NoError(t, err)
	assert.Equal(t, chainsel.FamilyEVM, res.ChainFamily)

	tx, ok := res.RawData.(*gethTypes.Transaction)
	require.True(t, ok)
	assert.Equal(t, tx.Hash().Hex(), res.Hash)
	require.NotNil(t, tx.To())
	assert.Equal(t, tokenBridge, *tx.To())

	// The calldata is registerChain(bytes) with the VAA as its only argument.
	data := tx.Data()
	require.Greater(t, len(data), 4)
	assert.Equal(t, crypto.Keccak256([]byte("registerChain(bytes)"))[:4], data[:4])

	parsed, err := abi.JSON(strings.NewReader(bindings.TokenBridgeABI))
	require.NoError(t, err)
	args, err := parsed.Methods["registerChain"].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, raw, args[0])

	receipt := sim.MineAndReceipt(t, tx)
	assert.Equal(t, gethTypes.ReceiptStatusSuccessful, receipt.Status)
}

func TestSubmitter_Submit_Errors(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	core := common.HexToAddress("0x98f3c9e6E3fAce36bAAd05FE09d375Ef1464288B")

	failingAuth := sim.Relayers[0].NewTransactOpts(t)
	failingAuth.Signer = func(common.Address, *gethTypes.Transaction) (*gethTypes.Transaction, error) {
		return nil, errors.New("signer unavailable")
	}

	tests := []struct {
		name      string
		submitter *Submitter
		chain     types.ChainID
		give      payload.Payload
		wantErr   string
	}{
		{
			name:      "failure: chain is not an EVM chain",
			submitter: NewSubmitter(sim.Backend.Client(), sim.Relayers[0].NewTransactOpts(t), Contracts{Core: core}),
			chain:     types.ChainIDSolana,
			give:      &payload.GuardianSetUpgrade{NewIndex: 1},
			wantErr:   "invalid chain ID: 1",
		},
		{
			name:      "failure: module has no contract",
			submitter: NewSubmitter(sim.Backend.Client(), sim.Relayers[0].NewTransactOpts(t), Contracts{Core: core}),
			chain:     types.ChainIDEthereum,
			give:      &payload.Transfer{ToChain: types.ChainIDEthereum},
			wantErr:   "no contract address configured for module TokenBridge",
		},
		{
			name:      "failure: payload is not supported",
			submitter: NewSubmitter(sim.Backend.Client(), sim.Relayers[0].NewTransactOpts(t), Contracts{Core: core}),
			chain:     types.ChainIDEthereum,
			give:      &payload.Unrecognized{Raw: []byte{0xaa}},
			wantErr:   "Unrecognized payloads are not supported on evm",
		},
		{
			name:      "failure: transaction cannot be signed",
			submitter: NewSubmitter(sim.Backend.Client(), failingAuth, Contracts{Core: core}),
			chain:     types.ChainIDEthereum,
			give:      &payload.SetMessageFee{Chain: types.ChainIDEthereum, Fee: uint256.NewInt(1)},
			wantErr:   "signer unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.submitter.Submit(context.Background(), tt.chain, tt.give, []byte{0x01})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
