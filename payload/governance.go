package payload

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/wormhole-foundation/vaa/internal/utils/json"
	"github.com/wormhole-foundation/vaa/internal/wire"
	"github.com/wormhole-foundation/vaa/types"
)

// GuardianSetUpgrade replaces the guardian set of the core contract.
type GuardianSetUpgrade struct {
	Chain    types.ChainID    `json:"chain"`
	NewIndex uint32           `json:"newGuardianSetIndex"`
	Keys     []common.Address `json:"keys"`
}

func (*GuardianSetUpgrade) isPayload()     {}
func (*GuardianSetUpgrade) Module() Module { return Core }
func (*GuardianSetUpgrade) Type() string   { return TypeGuardianSetUpgrade }
func (p *GuardianSetUpgrade) Accept(v Visitor) error {
	return v.VisitGuardianSetUpgrade(p)
}

func (p *GuardianSetUpgrade) TargetChain() (types.ChainID, bool) {
	return target(p.Chain)
}

func (p *GuardianSetUpgrade) MarshalJSON() ([]byte, error) {
	type alias GuardianSetUpgrade
	return json.MarshalWith((*alias)(p), header(p))
}

func readGuardianSetUpgrade(_ Module, r *wire.Reader) Payload {
	p := &GuardianSetUpgrade{
		Chain:    types.ChainID(r.Uint16("chain")),
		NewIndex: r.Uint32("newGuardianSetIndex"),
	}
	n := int(r.Uint8("keyCount"))
	for i := 0; i < n && r.Err() == nil; i++ {
		p.Keys = append(p.Keys, common.Address(r.Bytes20("key")))
	}

	return p
}

// ContractUpgrade points a module at a new implementation.
type ContractUpgrade struct {
	ModuleName  Module        `json:"-"`
	Chain       types.ChainID `json:"chain"`
	NewContract types.Address `json:"newContract"`
}

func (*ContractUpgrade) isPayload()       {}
func (p *ContractUpgrade) Module() Module { return p.ModuleName }
func (*ContractUpgrade) Type() string     { return TypeContractUpgrade }
func (p *ContractUpgrade) Accept(v Visitor) error {
	return v.VisitContractUpgrade(p)
}

func (p *ContractUpgrade) TargetChain() (types.ChainID, bool) {
	return target(p.Chain)
}

func (p *ContractUpgrade) MarshalJSON() ([]byte, error) {
	type alias ContractUpgrade
	return json.MarshalWith((*alias)(p), header(p))
}

func readContractUpgrade(m Module, r *wire.Reader) Payload {
	return &ContractUpgrade{
		ModuleName:  m,
		Chain:       types.ChainID(r.Uint16("chain")),
		NewContract: r.Bytes32("newContract"),
	}
}

// RegisterChain registers the emitter of a bridge deployed on another chain.
type RegisterChain struct {
	ModuleName     Module        `json:"-"`
	Chain          types.ChainID `json:"chain"`
	EmitterChain   types.ChainID `json:"emitterChain"`
	EmitterAddress types.Address `json:"emitterAddress"`
}

func (*RegisterChain) isPayload()       {}
func (p *RegisterChain) Module() Module { return p.ModuleName }
func (*RegisterChain) Type() string     { return TypeRegisterChain }
func (p *RegisterChain) Accept(v Visitor) error {
	return v.VisitRegisterChain(p)
}

func (p *RegisterChain) TargetChain() (types.ChainID, bool) {
	return target(p.Chain)
}

func (p *RegisterChain) MarshalJSON() ([]byte, error) {
	type alias RegisterChain
	return json.MarshalWith((*alias)(p), header(p))
}

func readRegisterChain(m Module, r *wire.Reader) Payload {
	return &RegisterChain{
		ModuleName:     m,
		Chain:          types.ChainID(r.Uint16("chain")),
		EmitterChain:   types.ChainID(r.Uint16("emitterChain")),
		EmitterAddress: r.Bytes32("emitterAddress"),
	}
}

// RecoverChainID moves a module to a new chain id after a fork of the EVM chain it lives on. It
// names the chain by its EVM chain id only, so it never reports a target chain.
type RecoverChainID struct {
	ModuleName Module        `json:"-"`
	EVMChainID *uint256.Int  `json:"evmChainId"`
	NewChainID types.ChainID `json:"newChainId"`
}

func (*RecoverChainID) isPayload()       {}
func (p *RecoverChainID) Module() Module { return p.ModuleName }
func (*RecoverChainID) Type() string     { return TypeRecoverChainID }
func (p *RecoverChainID) Accept(v Visitor) error {
	return v.VisitRecoverChainID(p)
}

func (*RecoverChainID) TargetChain() (types.ChainID, bool) {
	return types.ChainIDUnset, false
}

func (p *RecoverChainID) MarshalJSON() ([]byte, error) {
	type alias RecoverChainID
	return json.MarshalWith((*alias)(p), header(p))
}

func readRecoverChainID(m Module, r *wire.Reader) Payload {
	return &RecoverChainID{
		ModuleName: m,
		EVMChainID: r.Uint256("evmChainId"),
		NewChainID: types.ChainID(r.Uint16("newChainId")),
	}
}

// SetMessageFee sets the fee the core contract charges per published message.
type SetMessageFee struct {
	Chain types.ChainID `json:"chain"`
	Fee   *uint256.Int  `json:"fee"`
}

func (*SetMessageFee) isPayload()     {}
func (*SetMessageFee) Module() Module { return Core }
func (*SetMessageFee) Type() string   { return TypeSetMessageFee }
func (p *SetMessageFee) Accept(v Visitor) error {
	return v.VisitSetMessageFee(p)
}

func (p *SetMessageFee) TargetChain() (types.ChainID, bool) {
	return target(p.Chain)
}

func (p *SetMessageFee) MarshalJSON() ([]byte, error) {
	type alias SetMessageFee
	return json.MarshalWith((*alias)(p), header(p))
}

func readSetMessageFee(_ Module, r *wire.Reader) Payload {
	return &SetMessageFee{
		Chain: types.ChainID(r.Uint16("chain")),
		Fee:   r.Uint256("fee"),
	}
}

// TransferFees pays collected message fees out of the core contract.
type TransferFees struct {
	Chain     types.ChainID `json:"chain"`
	Amount    *uint256.Int  `json:"amount"`
	Recipient types.Address `json:"recipient"`
}

func (*TransferFees) isPayload()     {}
func (*TransferFees) Module() Module { return Core }
func (*TransferFees) Type() string   { return TypeTransferFees }
func (p *TransferFees) Accept(v Visitor) error {
	return v.VisitTransferFees(p)
}

func (p *TransferFees) TargetChain() (types.ChainID, bool) {
	return target(p.Chain)
}

func (p *TransferFees) MarshalJSON() ([]byte, error) {
	type alias TransferFees
	return json.MarshalWith((*alias)(p), header(p))
}

func readTransferFees(_ Module, r *wire.Reader) Payload {
	return &TransferFees{
		Chain:     types.ChainID(r.Uint16("chain")),
		Amount:    r.Uint256("amount"),
		Recipient: r.Bytes32("recipient"),
	}
}

// header is the tag added to the JSON form of every payload.
func header(p Payload) map[string]any {
	return map[string]any{"module": p.Module(), "type": p.Type()}
}
