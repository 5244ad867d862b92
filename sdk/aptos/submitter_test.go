package aptos

import (
	"context"
	"errors"
	"testing"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
	"github.com/holiman/uint256"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/sdk/aptos/mocks"
	"github.com/wormhole-foundation/vaa/types"
)

var testContracts = Contracts{
	Core:        mustParseAddress("0x5bc11445584a763c1fa7ed39081f1b920954da14e04b32440cba863d03e19625"),
	TokenBridge: mustParseAddress(mainnetTokenBridge),
	NFTBridge:   mustParseAddress("0x1bdffae984043833ed7fe223f7af7a3f8902d04129b14f801823e64827da7130"),
}

var weth = types.MustStringToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

func TestEntryFunctionsFor(t *testing.T) {
	t.Parallel()

	wrappedWETH := "0xcc8a89c8dce9693d354449f1f73e60e14e347417854f029db5bc8e7454008abb::coin::T"

	tests := []struct {
		name         string
		give         payload.Payload
		want         []string
		wantTypeArgs []string
	}{
		{
			name: "guardian set upgrade",
			give: &payload.GuardianSetUpgrade{NewIndex: 1},
			want: []string{testContracts.Core.String() + "::guardian_set_upgrade::submit_vaa_entry"},
		},
		{
			name: "core contract upgrade",
			give: &payload.ContractUpgrade{ModuleName: payload.Core, Chain: types.ChainIDAptos},
			want: []string{testContracts.Core.String() + "::contract_upgrade::submit_vaa_entry"},
		},
		{
			name: "token bridge contract upgrade",
			give: &payload.ContractUpgrade{ModuleName: payload.TokenBridge, Chain: types.ChainIDAptos},
			want: []string{testContracts.TokenBridge.String() + "::contract_upgrade::submit_vaa_entry"},
		},
		{
			name: "nft bridge register chain",
			give: &payload.RegisterChain{ModuleName: payload.NFTBridge, EmitterChain: types.ChainIDEthereum},
			want: []string{testContracts.NFTBridge.String() + "::register_chain::submit_vaa_entry"},
		},
		{
			name: "attestation",
			give: &payload.AttestMeta{TokenAddress: weth, TokenChain: types.ChainIDEthereum, Decimals: 18},
			want: []string{
				testContracts.TokenBridge.String() + "::wrapped::create_wrapped_coin_type",
				testContracts.TokenBridge.String() + "::wrapped::create_wrapped_coin",
			},
			wantTypeArgs: []string{wrappedWETH},
		},
		{
			name: "transfer",
			give: &payload.Transfer{
				Amount:       uint256.NewInt(1),
				TokenAddress: weth,
				TokenChain:   types.ChainIDEthereum,
				ToChain:      types.ChainIDAptos,
				Fee:          uint256.NewInt(0),
			},
			want:         []string{testContracts.TokenBridge.String() + "::complete_transfer::submit_vaa_and_register_entry"},
			wantTypeArgs: []string{wrappedWETH},
		},
		{
			name: "nft transfer",
			give: &payload.NFTTransfer{TokenChain: types.ChainIDEthereum, TokenID: uint256.NewInt(1), ToChain: types.ChainIDAptos},
			want: []string{testContracts.NFTBridge.String() + "::complete_transfer::submit_vaa_and_register_entry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls, err := entryFunctionsFor(testContracts, tt.give)
			require.NoError(t, err)

			got := make([]string, len(calls))
			var typeArgs []string
			for i, c := range calls {
				got[i] = c.String()
				for _, tag := range c.typeArgs {
					typeArgs = append(typeArgs, tag.String())
				}
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTypeArgs, typeArgs)
		})
	}
}

func TestEntryFunctionsFor_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		contracts Contracts
		give      payload.Payload
		wantErr   string
	}{
		{
			name:      "failure: recover chain id",
			contracts: testContracts,
			give:      &payload.RecoverChainID{ModuleName: payload.Core},
			wantErr:   "Core RecoverChainId payloads are not supported on aptos",
		},
		{
			name:      "failure: set message fee",
			contracts: testContracts,
			give:      &payload.SetMessageFee{},
			wantErr:   "Core SetMessageFee payloads are not supported on aptos",
		},
		{
			name:      "failure: transfer fees",
			contracts: testContracts,
			give:      &payload.TransferFees{},
			wantErr:   "Core TransferFees payloads are not supported on aptos",
		},
		{
			name:      "failure: transfer with payload",
			contracts: testContracts,
			give:      &payload.TransferWithPayload{TokenChain: types.ChainIDEthereum},
			wantErr:   "TokenBridge TransferWithPayload payloads are not supported on aptos",
		},
		{
			name:      "failure: native token transfer",
			contracts: testContracts,
			give:      &payload.Transfer{TokenChain: types.ChainIDAptos, TokenAddress: weth},
			wantErr:   "cannot resolve the coin type of native token " + weth.String(),
		},
		{
			name:      "failure: token bridge not deployed",
			contracts: Contracts{Core: testContracts.Core},
			give:      &payload.AttestMeta{TokenAddress: weth, TokenChain: types.ChainIDEthereum},
			wantErr:   "no contract address configured for module TokenBridge",
		},
		{
			name:      "failure: core not deployed",
			contracts: Contracts{TokenBridge: testContracts.TokenBridge},
			give:      &payload.GuardianSetUpgrade{NewIndex: 1},
			wantErr:   "no contract address configured for module Core",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := entryFunctionsFor(tt.contracts, tt.give)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestEntryFunctionsFor_Unrecognized(t *testing.T) {
	t.Parallel()

	_, err := entryFunctionsFor(testContracts, &payload.Unrecognized{Raw: []byte{1}})

	var unsupported *sdkerrors.UnsupportedPayloadError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, chainsel.FamilyAptos, unsupported.ChainFamily)
}

// entryFunctionOf returns the entry function of a transaction payload.
func entryFunctionOf(t *testing.T, p aptos.TransactionPayload) *aptos.EntryFunction {
	t.Helper()

	fn, ok := p.Payload.(*aptos.EntryFunction)
	require.True(t, ok, "payload is %T", p.Payload)

	return fn
}

func TestSubmitter_Submit(t *testing.T) {
	t.Parallel()

	ctx := sdk.WithLogger(context.Background(), zap.NewNop().Sugar())
	auth, err := aptos.NewEd25519Account()
	require.NoError(t, err)

	client := mocks.NewRPCClient(t)

	var functions []string
	client.EXPECT().BuildSignAndSubmitTransaction(auth, mock.Anything).
		RunAndReturn(func(_ aptos.TransactionSigner, p aptos.TransactionPayload, _ ...any) (*api.SubmitTransactionResponse, error) {
			fn := entryFunctionOf(t, p)
			functions = append(functions, fn.Module.Name+"::"+fn.Function)
			assert.Equal(t, [][]byte{{0x03, 0x01, 0x02, 0x03}}, fn.Args)

			return &api.SubmitTransactionResponse{Hash: "0x" + fn.Function}, nil
		}).Times(2)
	client.EXPECT().WaitForTransaction("0xcreate_wrapped_coin_type").
		Return(&api.UserTransaction{Hash: "0xcreate_wrapped_coin_type", Success: true}, nil).Once()
	last := &api.UserTransaction{Hash: "0xcreate_wrapped_coin", Success: true}
	client.EXPECT().WaitForTransaction("0xcreate_wrapped_coin").Return(last, nil).Once()

	submitter := NewSubmitter(client, auth, testContracts)
	p := &payload.AttestMeta{TokenAddress: weth, TokenChain: types.ChainIDEthereum, Decimals: 18}

	res, err := submitter.Submit(ctx, types.ChainIDAptos, p, []byte{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"wrapped::create_wrapped_coin_type", "wrapped::create_wrapped_coin"}, functions)
	assert.Equal(t, types.TransactionResult{
		Hash:        "0xcreate_wrapped_coin",
		ChainFamily: chainsel.FamilyAptos,
		RawData:     last,
	}, res)
}

func TestSubmitter_Submit_Errors(t *testing.T) {
	t.Parallel()

	register := &payload.RegisterChain{ModuleName: payload.TokenBridge, EmitterChain: types.ChainIDEthereum}

	tests := []struct {
		name      string
		chain     types.ChainID
		give      payload.Payload
		mockSetup func(*mocks.RPCClient)
		wantErr   string
	}{
		{
			name:    "failure: not an aptos chain",
			chain:   types.ChainIDEthereum,
			give:    register,
			wantErr: "invalid chain ID: 2",
		},
		{
			name:    "failure: unsupported payload",
			chain:   types.ChainIDAptos,
			give:    &payload.SetMessageFee{},
			wantErr: "Core SetMessageFee payloads are not supported on aptos",
		},
		{
			name:  "failure: submit",
			chain: types.ChainIDAptos,
			give:  register,
			mockSetup: func(client *mocks.RPCClient) {
				client.EXPECT().BuildSignAndSubmitTransaction(mock.Anything, mock.Anything).
					Return(nil, errors.New("sequence number too old"))
			},
			wantErr: "unable to submit " + testContracts.TokenBridge.String() +
				"::register_chain::submit_vaa_entry: sequence number too old",
		},
		{
			name:  "failure: wait",
			chain: types.ChainIDAptos,
			give:  register,
			mockSetup: func(client *mocks.RPCClient) {
				client.EXPECT().BuildSignAndSubmitTransaction(mock.Anything, mock.Anything).
					Return(&api.SubmitTransactionResponse{Hash: "0x01"}, nil)
				client.EXPECT().WaitForTransaction("0x01").Return(nil, errors.New("timeout"))
			},
			wantErr: "unable to wait for transaction 0x01: timeout",
		},
		{
			name:  "failure: transaction aborted",
			chain: types.ChainIDAptos,
			give:  register,
			mockSetup: func(client *mocks.RPCClient) {
				client.EXPECT().BuildSignAndSubmitTransaction(mock.Anything, mock.Anything).
					Return(&api.SubmitTransactionResponse{Hash: "0x01"}, nil)
				client.EXPECT().WaitForTransaction("0x01").
					Return(&api.UserTransaction{Hash: "0x01", VmStatus: "Move abort: E_INVALID_VAA"}, nil)
			},
			wantErr: "transaction 0x01 failed: Move abort: E_INVALID_VAA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRPCClient(t)
			if tt.mockSetup != nil {
				tt.mockSetup(client)
			}

			submitter := NewSubmitter(client, nil, testContracts)
			_, err := submitter.Submit(context.Background(), tt.chain, tt.give, []byte{1})
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
