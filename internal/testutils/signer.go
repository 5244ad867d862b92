package testutils

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// DevnetGuardianKeyHex is the key of the single guardian of a local devnet.
	DevnetGuardianKeyHex = "cfb12303a19cde580bb4dd771639b0d26bc68353645571a8cff516ab2ee113a0"

	// SecondGuardianKeyHex is a well known development key used as a second guardian.
	SecondGuardianKeyHex = "4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

// MustECDSASignerFromHex panics if key is not a valid secp256k1 private key.
func MustECDSASignerFromHex(key string) *ECDSASigner {
	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		panic(err)
	}

	return &ECDSASigner{Key: pk}
}

// DevnetGuardian returns the signer of the devnet guardian set.
func DevnetGuardian() *ECDSASigner {
	return MustECDSASignerFromHex(DevnetGuardianKeyHex)
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// Sign signs a 32 byte digest without prefix.
func (s *ECDSASigner) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, s.Key)
}

func (s *ECDSASigner) GetAddress() (common.Address, error) {
	return s.Address(), nil
}

// MakeNewECDSASigners returns n random signers. The position in the slice is the guardian index.
func MakeNewECDSASigners(n int) []*ECDSASigner {
	signers := make([]*ECDSASigner, n)
	for i := range n {
		signers[i] = NewECDSASigner()
	}

	return signers
}

// Addresses returns the guardian keys of signers, in order.
func Addresses(signers []*ECDSASigner) []common.Address {
	addrs := make([]common.Address, len(signers))
	for i, s := range signers {
		addrs[i] = s.Address()
	}

	return addrs
}
