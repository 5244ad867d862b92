package payload

import (
	"fmt"

	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/internal/wire"
)

// Encode serializes p to its wire form.
func Encode(p Payload) ([]byte, error) {
	e := &encoder{w: wire.NewWriter()}
	if err := p.Accept(e); err != nil {
		return nil, err
	}

	return e.w.Bytes()
}

// encoder writes each variant. It must implement every Visitor method, so a new variant cannot be
// added without a serializer.
type encoder struct {
	w *wire.Writer
}

var _ Visitor = (*encoder)(nil)

func (e *encoder) governance(m Module, action uint8) error {
	tag, err := m.Tag()
	if err != nil {
		return err
	}
	e.w.Raw(tag[:]).Uint8(action)

	return nil
}

func (e *encoder) VisitGuardianSetUpgrade(p *GuardianSetUpgrade) error {
	n, err := safecast.IntToUint8(len(p.Keys))
	if err != nil {
		return NewInvalidFieldError(p.Type(), "keys", err.Error())
	}
	if err := e.governance(Core, ActionGuardianSetUpgrade); err != nil {
		return err
	}
	e.w.Uint16(uint16(p.Chain)).Uint32(p.NewIndex).Uint8(n)
	for _, k := range p.Keys {
		e.w.Raw(k.Bytes())
	}

	return nil
}

func (e *encoder) VisitContractUpgrade(p *ContractUpgrade) error {
	var action uint8
	switch {
	case p.ModuleName == Core:
		action = ActionCoreContractUpgrade
	case p.ModuleName.isBridge():
		action = ActionBridgeContractUpgrade
	default:
		return NewInvalidFieldError(p.Type(), "module", fmt.Sprintf("unknown module %q", p.ModuleName))
	}
	if err := e.governance(p.ModuleName, action); err != nil {
		return err
	}
	e.w.Uint16(uint16(p.Chain)).Raw(p.NewContract.Bytes())

	return nil
}

func (e *encoder) VisitRegisterChain(p *RegisterChain) error {
	if !p.ModuleName.isBridge() {
		return NewInvalidFieldError(p.Type(), "module", fmt.Sprintf("%q has no chain registrations", p.ModuleName))
	}
	if err := e.governance(p.ModuleName, ActionRegisterChain); err != nil {
		return err
	}
	e.w.Uint16(uint16(p.Chain)).Uint16(uint16(p.EmitterChain)).Raw(p.EmitterAddress.Bytes())

	return nil
}

func (e *encoder) VisitRecoverChainID(p *RecoverChainID) error {
	var action uint8
	switch {
	case p.ModuleName == Core:
		action = ActionCoreRecoverChainID
	case p.ModuleName.isBridge():
		action = ActionBridgeRecoverChainID
	default:
		return NewInvalidFieldError(p.Type(), "module", fmt.Sprintf("unknown module %q", p.ModuleName))
	}
	if err := e.governance(p.ModuleName, action); err != nil {
		return err
	}
	e.w.Uint256(p.EVMChainID).Uint16(uint16(p.NewChainID))

	return nil
}

func (e *encoder) VisitSetMessageFee(p *SetMessageFee) error {
	if err := e.governance(Core, ActionSetMessageFee); err != nil {
		return err
	}
	e.w.Uint16(uint16(p.Chain)).Uint256(p.Fee)

	return nil
}

func (e *encoder) VisitTransferFees(p *TransferFees) error {
	if err := e.governance(Core, ActionTransferFees); err != nil {
		return err
	}
	e.w.Uint16(uint16(p.Chain)).Uint256(p.Amount).Raw(p.Recipient.Bytes())

	return nil
}

func (e *encoder) VisitAttestMeta(p *AttestMeta) error {
	symbol, err := padString(p.Type(), "symbol", p.Symbol)
	if err != nil {
		return err
	}
	name, err := padString(p.Type(), "name", p.Name)
	if err != nil {
		return err
	}
	e.w.Uint8(IDAttestMeta).
		Raw(p.TokenAddress.Bytes()).
		Uint16(uint16(p.TokenChain)).
		Uint8(p.Decimals).
		Raw(symbol[:]).
		Raw(name[:])

	return nil
}

func (e *encoder) VisitTransfer(p *Transfer) error {
	e.w.Uint8(IDTransfer).
		Uint256(p.Amount).
		Raw(p.TokenAddress.Bytes()).
		Uint16(uint16(p.TokenChain)).
		Raw(p.To.Bytes()).
		Uint16(uint16(p.ToChain)).
		Uint256(p.Fee)

	return nil
}

func (e *encoder) VisitTransferWithPayload(p *TransferWithPayload) error {
	e.w.Uint8(IDTransferWithPayload).
		Uint256(p.Amount).
		Raw(p.TokenAddress.Bytes()).
		Uint16(uint16(p.TokenChain)).
		Raw(p.To.Bytes()).
		Uint16(uint16(p.ToChain)).
		Raw(p.From.Bytes()).
		Raw(p.Payload)

	return nil
}

func (e *encoder) VisitNFTTransfer(p *NFTTransfer) error {
	symbol, err := padString(p.Type(), "symbol", p.Symbol)
	if err != nil {
		return err
	}
	name, err := padString(p.Type(), "name", p.Name)
	if err != nil {
		return err
	}
	if len(p.URI) > MaxURILength {
		return NewInvalidFieldError(p.Type(), "uri", fmt.Sprintf("longer than %d bytes", MaxURILength))
	}
	uriLen, err := safecast.IntToUint8(len(p.URI))
	if err != nil {
		return NewInvalidFieldError(p.Type(), "uri", err.Error())
	}
	e.w.Uint8(IDNFTTransfer).
		Raw(p.TokenAddress.Bytes()).
		Uint16(uint16(p.TokenChain)).
		Raw(symbol[:]).
		Raw(name[:]).
		Uint256(p.TokenID).
		Uint8(uriLen).
		Raw([]byte(p.URI)).
		Raw(p.To.Bytes()).
		Uint16(uint16(p.ToChain))

	return nil
}

func (e *encoder) VisitUnrecognized(p *Unrecognized) error {
	e.w.Raw(p.Raw)
	return nil
}
