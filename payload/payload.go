// Package payload decodes and encodes the payloads carried by a VAA.
//
// The set of payloads is closed. Every variant implements Payload and is visited through Visitor,
// so a consumer that implements Visitor is checked by the compiler to handle each variant.
package payload

import (
	"github.com/wormhole-foundation/vaa/internal/wire"
	"github.com/wormhole-foundation/vaa/types"
)

// Payload type names.
const (
	TypeGuardianSetUpgrade  = "GuardianSetUpgrade"
	TypeContractUpgrade     = "ContractUpgrade"
	TypeRegisterChain       = "RegisterChain"
	TypeRecoverChainID      = "RecoverChainId"
	TypeSetMessageFee       = "SetMessageFee"
	TypeTransferFees        = "TransferFees"
	TypeAttestMeta          = "AttestMeta"
	TypeTransfer            = "Transfer"
	TypeTransferWithPayload = "TransferWithPayload"
	TypeNFTTransfer         = "NFTTransfer"
	TypeUnrecognized        = "Unrecognized"
)

// Payload is a decoded VAA payload.
type Payload interface {
	// Module is the contract the payload is addressed to. It is empty for Unrecognized payloads.
	Module() Module
	// Type is the variant name.
	Type() string
	// TargetChain returns the chain named by the payload. The second result is false when the
	// payload names no chain, or names chain 0 which means every chain.
	TargetChain() (types.ChainID, bool)
	// Accept calls the Visitor method for the concrete variant.
	Accept(v Visitor) error

	isPayload()
}

// Visitor has one method per payload variant.
type Visitor interface {
	VisitGuardianSetUpgrade(p *GuardianSetUpgrade) error
	VisitContractUpgrade(p *ContractUpgrade) error
	VisitRegisterChain(p *RegisterChain) error
	VisitRecoverChainID(p *RecoverChainID) error
	VisitSetMessageFee(p *SetMessageFee) error
	VisitTransferFees(p *TransferFees) error
	VisitAttestMeta(p *AttestMeta) error
	VisitTransfer(p *Transfer) error
	VisitTransferWithPayload(p *TransferWithPayload) error
	VisitNFTTransfer(p *NFTTransfer) error
	VisitUnrecognized(p *Unrecognized) error
}

// entry is one row of the registry. For governance entries action is the action byte following
// the module tag, for application entries it is the leading payload id.
type entry struct {
	name       string
	module     Module
	governance bool
	action     uint8
	parse      func(m Module, r *wire.Reader) Payload
}

// registry lists every known payload in the order Parse tries them.
var registry = []entry{
	{name: TypeContractUpgrade, module: Core, governance: true, action: ActionCoreContractUpgrade, parse: readContractUpgrade},
	{name: TypeGuardianSetUpgrade, module: Core, governance: true, action: ActionGuardianSetUpgrade, parse: readGuardianSetUpgrade},
	{name: TypeSetMessageFee, module: Core, governance: true, action: ActionSetMessageFee, parse: readSetMessageFee},
	{name: TypeTransferFees, module: Core, governance: true, action: ActionTransferFees, parse: readTransferFees},
	{name: TypeRecoverChainID, module: Core, governance: true, action: ActionCoreRecoverChainID, parse: readRecoverChainID},

	{name: TypeRegisterChain, module: TokenBridge, governance: true, action: ActionRegisterChain, parse: readRegisterChain},
	{name: TypeContractUpgrade, module: TokenBridge, governance: true, action: ActionBridgeContractUpgrade, parse: readContractUpgrade},
	{name: TypeRecoverChainID, module: TokenBridge, governance: true, action: ActionBridgeRecoverChainID, parse: readRecoverChainID},

	{name: TypeRegisterChain, module: NFTBridge, governance: true, action: ActionRegisterChain, parse: readRegisterChain},
	{name: TypeContractUpgrade, module: NFTBridge, governance: true, action: ActionBridgeContractUpgrade, parse: readContractUpgrade},
	{name: TypeRecoverChainID, module: NFTBridge, governance: true, action: ActionBridgeRecoverChainID, parse: readRecoverChainID},

	{name: TypeTransfer, module: TokenBridge, action: IDTransfer, parse: readTransfer},
	{name: TypeAttestMeta, module: TokenBridge, action: IDAttestMeta, parse: readAttestMeta},
	{name: TypeTransferWithPayload, module: TokenBridge, action: IDTransferWithPayload, parse: readTransferWithPayload},
	{name: TypeNFTTransfer, module: NFTBridge, action: IDNFTTransfer, parse: readNFTTransfer},
}

// Parse decodes b into a known payload variant.
//
// Governance payloads whose module tag and action match but whose body is truncated or followed by
// extra bytes fail with *MalformedPayloadError. Application payloads that fail to parse are left
// to the next candidate. Bytes that match nothing are returned as *Unrecognized without an error.
func Parse(b []byte) (Payload, error) {
	for _, e := range registry {
		if e.governance {
			if !e.module.matches(b) || len(b) <= ModuleTagLength || b[ModuleTagLength] != e.action {
				continue
			}

			r := wire.NewReader(b[ModuleTagLength+1:])
			p := e.parse(e.module, r)
			if err := r.Finish(); err != nil {
				return nil, NewMalformedPayloadError(e.module, e.name, err)
			}

			return p, nil
		}

		if len(b) == 0 || b[0] != e.action {
			continue
		}

		r := wire.NewReader(b[1:])
		p := e.parse(e.module, r)
		if r.Finish() == nil {
			return p, nil
		}
	}

	return &Unrecognized{Raw: append([]byte(nil), b...)}, nil
}

// IsGovernance reports whether p is a governance action.
func IsGovernance(p Payload) bool {
	for _, e := range registry {
		if e.governance && e.module == p.Module() && e.name == p.Type() {
			return true
		}
	}

	return false
}

// target reports chain 0 as no target.
func target(c types.ChainID) (types.ChainID, bool) {
	return c, c != types.ChainIDUnset
}
