package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/sdk/evm/bindings"
	"github.com/wormhole-foundation/vaa/types"
)

// Contracts holds the addresses of the contracts deployed on one EVM chain. A zero address means
// the module is not deployed.
type Contracts struct {
	Core        common.Address
	TokenBridge common.Address
	NFTBridge   common.Address
}

// address returns the contract of the module and its ABI.
func (c Contracts) address(m payload.Module) (common.Address, string, error) {
	var (
		addr    common.Address
		abiJSON string
	)
	switch m {
	case payload.Core:
		addr, abiJSON = c.Core, bindings.CoreABI
	case payload.TokenBridge:
		addr, abiJSON = c.TokenBridge, bindings.TokenBridgeABI
	case payload.NFTBridge:
		addr, abiJSON = c.NFTBridge, bindings.NFTBridgeABI
	}
	if addr == (common.Address{}) {
		return common.Address{}, "", sdkerrors.NewMissingContractError(string(m))
	}

	return addr, abiJSON, nil
}

var _ sdk.Submitter = (*Submitter)(nil)

// Submitter is a Submitter implementation for EVM chains. It calls the contract method that
// accepts the payload, passing the whole VAA.
type Submitter struct {
	client    bind.ContractBackend
	auth      *bind.TransactOpts
	contracts Contracts
}

// NewSubmitter creates a new Submitter for EVM chains
func NewSubmitter(client bind.ContractBackend, auth *bind.TransactOpts, contracts Contracts) *Submitter {
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
	if family != chainsel.FamilyEVM {
		return types.TransactionResult{}, sdkerrors.NewInvalidChainIDError(chain)
	}

	c, err := methodFor(p)
	if err != nil {
		return types.TransactionResult{}, err
	}

	address, abiJSON, err := s.contracts.address(c.module)
	if err != nil {
		return types.TransactionResult{}, err
	}

	contract, err := bindings.NewBoundContract(abiJSON, address, s.client)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to bind %s contract: %w", c.module, err)
	}

	opts := *s.auth
	opts.Context = ctx

	sdk.LoggerFrom(ctx).Infof("%s on %s: calling %s.%s at %s", c.action, chain, c.module, c.name, address.Hex())

	tx, err := contract.Transact(&opts, c.name, raw)
	if err != nil {
		return types.TransactionResult{}, BuildExecutionError(c.name, address, err)
	}

	return types.NewTransactionResult(tx.Hash().Hex(), chainsel.FamilyEVM, tx), nil
}

// contractCall is the contract method that accepts a payload.
type contractCall struct {
	module payload.Module
	name   string
	action string
}

func methodFor(p payload.Payload) (contractCall, error) {
	v := &methodVisitor{}
	if err := p.Accept(v); err != nil {
		return contractCall{}, err
	}

	return v.call, nil
}

// methodVisitor maps every payload variant to the contract method that consumes it.
type methodVisitor struct {
	call contractCall
}

var _ payload.Visitor = (*methodVisitor)(nil)

func (v *methodVisitor) set(m payload.Module, name, action string) error {
	v.call = contractCall{module: m, name: name, action: action}
	return nil
}

func (v *methodVisitor) VisitGuardianSetUpgrade(*payload.GuardianSetUpgrade) error {
	return v.set(payload.Core, "submitNewGuardianSet", "Upgrading guardian set")
}

func (v *methodVisitor) VisitContractUpgrade(p *payload.ContractUpgrade) error {
	if p.Module() == payload.Core {
		return v.set(payload.Core, "submitContractUpgrade", "Upgrading contract")
	}

	return v.set(p.Module(), "upgrade", "Upgrading contract")
}

func (v *methodVisitor) VisitRegisterChain(p *payload.RegisterChain) error {
	return v.set(p.Module(), "registerChain", "Registering chain")
}

func (v *methodVisitor) VisitRecoverChainID(p *payload.RecoverChainID) error {
	action := "Recovering chain id"
	if p.EVMChainID != nil && p.EVMChainID.IsUint64() {
		if name, err := types.EVMChainName(p.EVMChainID.Uint64()); err == nil {
			action = fmt.Sprintf("Recovering chain id %d of %s", uint16(p.NewChainID), name)
		}
	}

	return v.set(p.Module(), "submitRecoverChainId", action)
}

func (v *methodVisitor) VisitSetMessageFee(*payload.SetMessageFee) error {
	return v.set(payload.Core, "submitSetMessageFee", "Setting message fee")
}

func (v *methodVisitor) VisitTransferFees(*payload.TransferFees) error {
	return v.set(payload.Core, "submitTransferFees", "Transferring fees")
}

func (v *methodVisitor) VisitAttestMeta(*payload.AttestMeta) error {
	return v.set(payload.TokenBridge, "createWrapped", "Creating wrapped asset")
}

func (v *methodVisitor) VisitTransfer(*payload.Transfer) error {
	return v.set(payload.TokenBridge, "completeTransfer", "Completing transfer")
}

func (v *methodVisitor) VisitTransferWithPayload(*payload.TransferWithPayload) error {
	return v.set(payload.TokenBridge, "completeTransferWithPayload", "Completing transfer with payload")
}

func (v *methodVisitor) VisitNFTTransfer(*payload.NFTTransfer) error {
	return v.set(payload.NFTBridge, "completeTransfer", "Completing NFT transfer")
}

func (v *methodVisitor) VisitUnrecognized(p *payload.Unrecognized) error {
	return sdkerrors.NewUnsupportedPayloadError(chainsel.FamilyEVM, "", p.Type())
}
