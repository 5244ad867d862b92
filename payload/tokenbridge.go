package payload

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/wormhole-foundation/vaa/internal/utils/json"
	"github.com/wormhole-foundation/vaa/internal/wire"
	"github.com/wormhole-foundation/vaa/types"
)

// TransferLength is the exact length of a Transfer payload, id byte included.
const TransferLength = 133

// AttestMeta describes a token so that a wrapped version of it can be created on other chains.
// Symbol and Name are at most 32 bytes each. On the wire they are right padded with zero bytes,
// so trailing NUL characters are dropped when they are decoded; real token metadata has none.
type AttestMeta struct {
	TokenAddress types.Address `json:"tokenAddress"`
	TokenChain   types.ChainID `json:"tokenChain"`
	Decimals     uint8         `json:"decimals"`
	Symbol       string        `json:"symbol"`
	Name         string        `json:"name"`
}

func (*AttestMeta) isPayload()     {}
func (*AttestMeta) Module() Module { return TokenBridge }
func (*AttestMeta) Type() string   { return TypeAttestMeta }
func (p *AttestMeta) Accept(v Visitor) error {
	return v.VisitAttestMeta(p)
}

// TargetChain is never set for an attestation, it can be redeemed on any chain.
func (*AttestMeta) TargetChain() (types.ChainID, bool) {
	return types.ChainIDUnset, false
}

func (p *AttestMeta) MarshalJSON() ([]byte, error) {
	type alias AttestMeta
	return json.MarshalWith((*alias)(p), header(p))
}

func readAttestMeta(_ Module, r *wire.Reader) Payload {
	return &AttestMeta{
		TokenAddress: r.Bytes32("tokenAddress"),
		TokenChain:   types.ChainID(r.Uint16("tokenChain")),
		Decimals:     r.Uint8("decimals"),
		Symbol:       unpadString(r.Bytes32("symbol")),
		Name:         unpadString(r.Bytes32("name")),
	}
}

// Transfer moves tokens to an address on another chain.
type Transfer struct {
	Amount       *uint256.Int  `json:"amount"`
	TokenAddress types.Address `json:"tokenAddress"`
	TokenChain   types.ChainID `json:"tokenChain"`
	To           types.Address `json:"to"`
	ToChain      types.ChainID `json:"toChain"`
	Fee          *uint256.Int  `json:"fee"`
}

func (*Transfer) isPayload()     {}
func (*Transfer) Module() Module { return TokenBridge }
func (*Transfer) Type() string   { return TypeTransfer }
func (p *Transfer) Accept(v Visitor) error {
	return v.VisitTransfer(p)
}

func (p *Transfer) TargetChain() (types.ChainID, bool) {
	return target(p.ToChain)
}

func (p *Transfer) MarshalJSON() ([]byte, error) {
	type alias Transfer
	return json.MarshalWith((*alias)(p), header(p))
}

func readTransfer(_ Module, r *wire.Reader) Payload {
	return &Transfer{
		Amount:       r.Uint256("amount"),
		TokenAddress: r.Bytes32("tokenAddress"),
		TokenChain:   types.ChainID(r.Uint16("tokenChain")),
		To:           r.Bytes32("to"),
		ToChain:      types.ChainID(r.Uint16("toChain")),
		Fee:          r.Uint256("fee"),
	}
}

// TransferWithPayload moves tokens to a contract and hands it an arbitrary payload. From is the
// sender on the source chain.
type TransferWithPayload struct {
	Amount       *uint256.Int  `json:"amount"`
	TokenAddress types.Address `json:"tokenAddress"`
	TokenChain   types.ChainID `json:"tokenChain"`
	To           types.Address `json:"to"`
	ToChain      types.ChainID `json:"toChain"`
	From         types.Address `json:"fromAddress"`
	Payload      hexutil.Bytes `json:"payload"`
}

func (*TransferWithPayload) isPayload()     {}
func (*TransferWithPayload) Module() Module { return TokenBridge }
func (*TransferWithPayload) Type() string   { return TypeTransferWithPayload }
func (p *TransferWithPayload) Accept(v Visitor) error {
	return v.VisitTransferWithPayload(p)
}

func (p *TransferWithPayload) TargetChain() (types.ChainID, bool) {
	return target(p.ToChain)
}

func (p *TransferWithPayload) MarshalJSON() ([]byte, error) {
	type alias TransferWithPayload
	return json.MarshalWith((*alias)(p), header(p))
}

func readTransferWithPayload(_ Module, r *wire.Reader) Payload {
	return &TransferWithPayload{
		Amount:       r.Uint256("amount"),
		TokenAddress: r.Bytes32("tokenAddress"),
		TokenChain:   types.ChainID(r.Uint16("tokenChain")),
		To:           r.Bytes32("to"),
		ToChain:      types.ChainID(r.Uint16("toChain")),
		From:         r.Bytes32("fromAddress"),
		Payload:      r.Rest("payload"),
	}
}

// padString right pads s with zeros to 32 bytes.
func padString(typ, field, s string) ([32]byte, error) {
	var out [32]byte
	if len(s) > len(out) {
		return out, NewInvalidFieldError(typ, field, "longer than 32 bytes")
	}
	copy(out[:], s)

	return out, nil
}

func unpadString(b [32]byte) string {
	return string(bytes.TrimRight(b[:], "\x00"))
}
