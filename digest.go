package vaa

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/internal/wire"
)

// SigningBody returns the part of the envelope the guardians sign: everything after the
// signatures.
func (v *VAA) SigningBody() ([]byte, error) {
	ts, err := safecast.Int64ToUint32(v.Timestamp.Unix())
	if err != nil {
		return nil, NewMalformedEnvelopeError("timestamp", fmt.Sprintf("%s does not fit in 32 bits", v.Timestamp))
	}

	return wire.NewWriter().
		Uint32(ts).
		Uint32(v.Nonce).
		Uint16(uint16(v.EmitterChain)).
		Raw(v.EmitterAddress.Bytes()).
		Uint64(v.Sequence).
		Uint8(v.ConsistencyLevel).
		Raw(v.Payload).
		Bytes()
}

// SigningDigest is keccak256(keccak256(body)). Guardians sign the outer hash.
func (v *VAA) SigningDigest() (common.Hash, error) {
	body, err := v.SigningBody()
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(crypto.Keccak256(body)), nil
}

// HexDigest returns the signing digest as hex without prefix.
func (v *VAA) HexDigest() (string, error) {
	digest, err := v.SigningDigest()
	if err != nil {
		return "", err
	}

	return common.Bytes2Hex(digest.Bytes()), nil
}
