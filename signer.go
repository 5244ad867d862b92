package vaa

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is an interface for different strategies for signing VAA digests.
type Signer interface {
	// Sign returns a 65 byte r|s|v signature of the digest, with v in {0, 1}.
	Sign(digest []byte) ([]byte, error)
	GetAddress() (common.Address, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs digests using a guardian private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// NewPrivateKeySignerFromHex creates a PrivateKeySigner from a hex encoded key, with or without
// 0x prefix.
func NewPrivateKeySignerFromHex(key string) (*PrivateKeySigner, error) {
	if len(key) >= 2 && key[0] == '0' && (key[1] == 'x' || key[1] == 'X') {
		key = key[2:]
	}

	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guardian key: %w", err)
	}

	return NewPrivateKeySigner(pk), nil
}

// Sign signs the digest as is. No EIP 191 prefix is added.
func (s *PrivateKeySigner) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, s.pk)
}

// GetAddress returns the address of the signer.
func (s *PrivateKeySigner) GetAddress() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}
