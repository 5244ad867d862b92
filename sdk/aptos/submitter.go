package aptos

import (
	"context"
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/types"
)

// RPCClient is the part of aptos.AptosRpcClient used to submit VAAs. *aptos.Client implements it.
type RPCClient interface {
	BuildSignAndSubmitTransaction(
		sender aptos.TransactionSigner, payload aptos.TransactionPayload, options ...any,
	) (*api.SubmitTransactionResponse, error)
	WaitForTransaction(txnHash string, options ...any) (*api.UserTransaction, error)
}

var _ RPCClient = (*aptos.Client)(nil)

// Contracts holds the addresses the wormhole packages are published at. A zero address means the
// module is not deployed.
type Contracts struct {
	Core        aptos.AccountAddress
	TokenBridge aptos.AccountAddress
	NFTBridge   aptos.AccountAddress
}

func (c Contracts) address(m payload.Module) (aptos.AccountAddress, error) {
	var addr aptos.AccountAddress
	switch m {
	case payload.Core:
		addr = c.Core
	case payload.TokenBridge:
		addr = c.TokenBridge
	case payload.NFTBridge:
		addr = c.NFTBridge
	}
	if addr == (aptos.AccountAddress{}) {
		return aptos.AccountAddress{}, sdkerrors.NewMissingContractError(string(m))
	}

	return addr, nil
}

var _ sdk.Submitter = (*Submitter)(nil)

// Submitter is a Submitter implementation for Aptos. It calls the entry functions that consume the
// payload, one transaction at a time, and waits for each of them.
type Submitter struct {
	client    RPCClient
	auth      aptos.TransactionSigner
	contracts Contracts
}

// NewSubmitter creates a new Submitter for Aptos
func NewSubmitter(client RPCClient, auth aptos.TransactionSigner, contracts Contracts) *Submitter {
	return &Submitter{
		client:    client,
		auth:      auth,
		contracts: contracts,
	}
}

func (s *Submitter) Submit(
	ctx context.Context, chain types.ChainID, p payload.Payload, raw []byte,
) (types.TransactionResult, error) {
	family, err := chain.Family()
	if err != nil {
		return types.TransactionResult{}, err
	}
	if family != chainsel.FamilyAptos {
		return types.TransactionResult{}, sdkerrors.NewInvalidChainIDError(chain)
	}

	calls, err := entryFunctionsFor(s.contracts, p)
	if err != nil {
		return types.TransactionResult{}, err
	}

	ser := bcs.Serializer{}
	ser.WriteBytes(raw)
	arg := ser.ToBytes()

	log := sdk.LoggerFrom(ctx)
	var last *api.UserTransaction
	for _, c := range calls {
		if err := ctx.Err(); err != nil {
			return types.TransactionResult{}, err
		}

		log.Infof("%s on %s: calling %s", c.action, chain, c)

		fn := &aptos.EntryFunction{
			Module:   aptos.ModuleId{Address: c.address, Name: c.module},
			Function: c.function,
			ArgTypes: c.typeArgs,
			Args:     [][]byte{arg},
		}
		pending, err := s.client.BuildSignAndSubmitTransaction(s.auth, aptos.TransactionPayload{Payload: fn})
		if err != nil {
			return types.TransactionResult{}, fmt.Errorf("unable to submit %s: %w", c, err)
		}

		data, err := s.client.WaitForTransaction(pending.Hash)
		if err != nil {
			return types.TransactionResult{}, fmt.Errorf("unable to wait for transaction %s: %w", pending.Hash, err)
		}
		if !data.Success {
			return types.TransactionResult{}, fmt.Errorf("transaction %s failed: %s", data.Hash, data.VmStatus)
		}
		last = data
	}

	return types.NewTransactionResult(last.Hash, chainsel.FamilyAptos, last), nil
}

// entryFunction is an entry function taking the VAA as its only argument.
type entryFunction struct {
	address  aptos.AccountAddress
	module   string
	function string
	typeArgs []aptos.TypeTag
	action   string
}

func (c entryFunction) String() string {
	return fmt.Sprintf("%s::%s::%s", c.address.String(), c.module, c.function)
}

func entryFunctionsFor(contracts Contracts, p payload.Payload) ([]entryFunction, error) {
	v := &entryFunctionVisitor{contracts: contracts}
	if err := p.Accept(v); err != nil {
		return nil, err
	}

	return v.calls, nil
}

// entryFunctionVisitor maps every payload variant to the entry functions that consume it.
type entryFunctionVisitor struct {
	contracts Contracts
	calls     []entryFunction
}

var _ payload.Visitor = (*entryFunctionVisitor)(nil)

func (v *entryFunctionVisitor) add(m payload.Module, module, function, action string, typeArgs ...aptos.TypeTag) error {
	addr, err := v.contracts.address(m)
	if err != nil {
		return err
	}
	if typeArgs == nil {
		typeArgs = []aptos.TypeTag{}
	}

	v.calls = append(v.calls, entryFunction{
		address:  addr,
		module:   module,
		function: function,
		typeArgs: typeArgs,
		action:   action,
	})

	return nil
}

// wrappedCoin resolves the coin type of a token bridged from another chain.
func (v *entryFunctionVisitor) wrappedCoin(chain types.ChainID, origin types.Address) (aptos.TypeTag, error) {
	if chain == types.ChainIDAptos {
		return aptos.TypeTag{}, fmt.Errorf("cannot resolve the coin type of native token %s", origin)
	}
	bridge, err := v.contracts.address(payload.TokenBridge)
	if err != nil {
		return aptos.TypeTag{}, err
	}

	return WrappedCoinType(WrappedAssetAddress(bridge, chain, origin)), nil
}

func unsupported(p payload.Payload) error {
	return sdkerrors.NewUnsupportedPayloadError(chainsel.FamilyAptos, string(p.Module()), p.Type())
}

func (v *entryFunctionVisitor) VisitGuardianSetUpgrade(*payload.GuardianSetUpgrade) error {
	return v.add(payload.Core, "guardian_set_upgrade", "submit_vaa_entry", "Upgrading guardian set")
}

func (v *entryFunctionVisitor) VisitContractUpgrade(p *payload.ContractUpgrade) error {
	return v.add(p.Module(), "contract_upgrade", "submit_vaa_entry", "Upgrading contract")
}

func (v *entryFunctionVisitor) VisitRegisterChain(p *payload.RegisterChain) error {
	return v.add(p.Module(), "register_chain", "submit_vaa_entry", "Registering chain")
}

func (v *entryFunctionVisitor) VisitRecoverChainID(p *payload.RecoverChainID) error {
	return unsupported(p)
}

func (v *entryFunctionVisitor) VisitSetMessageFee(p *payload.SetMessageFee) error {
	return unsupported(p)
}

func (v *entryFunctionVisitor) VisitTransferFees(p *payload.TransferFees) error {
	return unsupported(p)
}

func (v *entryFunctionVisitor) VisitAttestMeta(p *payload.AttestMeta) error {
	coin, err := v.wrappedCoin(p.TokenChain, p.TokenAddress)
	if err != nil {
		return err
	}
	if err := v.add(payload.TokenBridge, "wrapped", "create_wrapped_coin_type", "Creating wrapped coin type"); err != nil {
		return err
	}

	return v.add(payload.TokenBridge, "wrapped", "create_wrapped_coin", "Creating wrapped coin", coin)
}

func (v *entryFunctionVisitor) VisitTransfer(p *payload.Transfer) error {
	coin, err := v.wrappedCoin(p.TokenChain, p.TokenAddress)
	if err != nil {
		return err
	}

	return v.add(payload.TokenBridge, "complete_transfer", "submit_vaa_and_register_entry", "Completing transfer", coin)
}

func (v *entryFunctionVisitor) VisitTransferWithPayload(p *payload.TransferWithPayload) error {
	return unsupported(p)
}

func (v *entryFunctionVisitor) VisitNFTTransfer(*payload.NFTTransfer) error {
	return v.add(payload.NFTBridge, "complete_transfer", "submit_vaa_and_register_entry", "Completing NFT transfer")
}

func (v *entryFunctionVisitor) VisitUnrecognized(p *payload.Unrecognized) error {
	return sdkerrors.NewUnsupportedPayloadError(chainsel.FamilyAptos, "", p.Type())
}
