package types

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// SignatureBytesLength defines the length of the signature in bytes after summing the byte
	// values of R, S, and V.
	SignatureBytesLength = 65

	// SignatureComponentSize defines the size of each signature component (R and S) in bytes.
	SignatureComponentSize = 32

	// SignatureVOffset defines the offset to adjust the recovery id (v) if needed.
	SignatureVOffset = 27
)

// Signature is a guardian signature. Index is the position of the guardian in the guardian set
// that produced it.
type Signature struct {
	Index uint8
	R     common.Hash
	S     common.Hash
	V     uint8
}

// NewSignatureFromBytes creates a new Signature from a byte slice of concatenated R, S, and V
// values.
func NewSignatureFromBytes(index uint8, sig []byte) (*Signature, error) {
	if len(sig) != SignatureBytesLength {
		return nil, fmt.Errorf("invalid signature length: %d", len(sig))
	}

	return &Signature{
		Index: index,
		R:     common.BytesToHash(sig[:SignatureComponentSize]),
		S:     common.BytesToHash(sig[SignatureComponentSize:(SignatureBytesLength - 1)]),
		V:     sig[SignatureBytesLength-1],
	}, nil
}

// ToBytes returns the 65 byte r|s|v representation of the signature.
func (s Signature) ToBytes() []byte {
	return slices.Concat(
		s.R.Bytes(),
		s.S.Bytes(),
		[]byte{s.V},
	)
}

// Recover returns the address recovered from the signature and the message hash
func (s Signature) Recover(hash common.Hash) (common.Address, error) {
	pubKey, err := s.RecoverPublicKey(hash)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// RecoverPublicKey returns the public key recovered from the signature and the message hash
func (s Signature) RecoverPublicKey(hash common.Hash) (*ecdsa.PublicKey, error) {
	sig := s.ToBytes()

	// Guardian signatures carry v as 0 or 1, but accept the Ethereum 27/28 form too.
	if sig[SignatureBytesLength-1] > 1 {
		sig[SignatureBytesLength-1] -= SignatureVOffset
	}

	return crypto.SigToPub(hash.Bytes(), sig)
}

type signatureJSON struct {
	Index     uint8         `json:"guardianSetIndex"`
	Signature hexutil.Bytes `json:"signature"`
}

// MarshalJSON renders the signature as its index and the 65 byte hex signature.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureJSON{Index: s.Index, Signature: s.ToBytes()})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var raw signatureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	sig, err := NewSignatureFromBytes(raw.Index, raw.Signature)
	if err != nil {
		return err
	}
	*s = *sig

	return nil
}
