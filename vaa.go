// Package vaa decodes, encodes, signs and routes Verified Action Approvals.
//
// A VAA is an envelope of guardian signatures over a body that carries an emitter, a sequence and
// an opaque payload. This package handles the envelope. The payload package decodes the payload,
// and Decode puts the two together.
package vaa

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/internal/wire"
	"github.com/wormhole-foundation/vaa/types"
)

const (
	// SupportedVAAVersion is the only envelope version understood by this package.
	SupportedVAAVersion = 1
	// HeaderLength is version, guardian set index and signature count.
	HeaderLength = 6
	// SignatureLength is one signature record: guardian index and 65 byte signature.
	SignatureLength = 1 + types.SignatureBytesLength
	// BodyLength is the fixed part of the body, everything but the payload.
	BodyLength = 4 + 4 + 2 + types.AddressLength + 8 + 1
	// MinVAALength is an envelope with no signatures and an empty payload.
	MinVAALength = HeaderLength + BodyLength
	// MaxSignatures is the most signatures the one byte count can describe.
	MaxSignatures = 255
)

// VAA is a signed envelope. Treat it as a value: functions in this package never mutate the VAA
// they are given.
type VAA struct {
	Version          uint8              `json:"version" validate:"eq=1"`
	GuardianSetIndex uint32             `json:"guardianSetIndex"`
	Signatures       []*types.Signature `json:"signatures" validate:"max=255,ascending_indexes,dive,required"`
	Timestamp        time.Time          `json:"timestamp"`
	Nonce            uint32             `json:"nonce"`
	Sequence         uint64             `json:"sequence"`
	ConsistencyLevel uint8              `json:"consistencyLevel"`
	EmitterChain     types.ChainID      `json:"emitterChain"`
	EmitterAddress   types.Address      `json:"emitterAddress"`
	Payload          hexutil.Bytes      `json:"payload"`
}

// Parse decodes an envelope. The payload is everything after the fixed body and is not
// interpreted.
func Parse(data []byte) (*VAA, error) {
	if len(data) < MinVAALength {
		return nil, NewMalformedEnvelopeError("length",
			fmt.Sprintf("VAA is too short: %d bytes, need at least %d", len(data), MinVAALength))
	}

	r := wire.NewReader(data)
	v := &VAA{Version: r.Uint8("version")}
	if v.Version != SupportedVAAVersion {
		return nil, NewMalformedEnvelopeError("version", fmt.Sprintf("unsupported version %d", v.Version))
	}
	v.GuardianSetIndex = r.Uint32("guardianSetIndex")

	count := int(r.Uint8("signatureCount"))
	if need := count*SignatureLength + BodyLength; r.Remaining() < need {
		return nil, NewMalformedEnvelopeError("signatures",
			fmt.Sprintf("%d signatures and a body need %d bytes, %d remaining", count, need, r.Remaining()))
	}

	v.Signatures = make([]*types.Signature, 0, count)
	for range count {
		index := r.Uint8("signatureIndex")
		raw := r.Bytes("signature", types.SignatureBytesLength)
		if r.Err() != nil {
			break
		}
		sig, err := types.NewSignatureFromBytes(index, raw)
		if err != nil {
			return nil, NewMalformedEnvelopeError("signature", err.Error())
		}
		v.Signatures = append(v.Signatures, sig)
	}

	v.Timestamp = time.Unix(int64(r.Uint32("timestamp")), 0).UTC()
	v.Nonce = r.Uint32("nonce")
	v.EmitterChain = types.ChainID(r.Uint16("emitterChain"))
	v.EmitterAddress = r.Bytes32("emitterAddress")
	v.Sequence = r.Uint64("sequence")
	v.ConsistencyLevel = r.Uint8("consistencyLevel")
	v.Payload = r.Rest("payload")

	if err := r.Err(); err != nil {
		return nil, NewMalformedEnvelopeError(r.Field(), err.Error())
	}

	return v, nil
}

// Marshal encodes the envelope. It is the inverse of Parse.
func (v *VAA) Marshal() ([]byte, error) {
	count, err := safecast.IntToUint8(len(v.Signatures))
	if err != nil {
		return nil, NewTooManySignaturesError(len(v.Signatures), MaxSignatures)
	}

	body, err := v.SigningBody()
	if err != nil {
		return nil, err
	}

	w := wire.NewWriter()
	w.Uint8(v.Version).Uint32(v.GuardianSetIndex).Uint8(count)
	for _, sig := range v.Signatures {
		w.Uint8(sig.Index).Raw(sig.ToBytes())
	}
	w.Raw(body)

	return w.Bytes()
}

// MessageID identifies the message independently of its signatures, as
// "<emitter chain>/<emitter address>/<sequence>".
func (v *VAA) MessageID() string {
	return fmt.Sprintf("%d/%s/%d", uint16(v.EmitterChain), v.EmitterAddress, v.Sequence)
}

// Clone returns a deep copy of v.
func (v *VAA) Clone() *VAA {
	c := *v
	c.Payload = bytes.Clone(v.Payload)
	if v.Signatures != nil {
		c.Signatures = make([]*types.Signature, len(v.Signatures))
		for i, sig := range v.Signatures {
			s := *sig
			c.Signatures[i] = &s
		}
	}

	return &c
}

// HasSignatureFrom reports whether a signature with the given guardian index is attached.
func (v *VAA) HasSignatureFrom(index uint8) bool {
	return slices.ContainsFunc(v.Signatures, func(s *types.Signature) bool {
		return s.Index == index
	})
}
