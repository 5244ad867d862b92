package vaa

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wormhole-foundation/vaa/types"
)

// RecoverAddress returns the address that produced the 65 byte signature over digest.
func RecoverAddress(digest common.Hash, sig []byte) (common.Address, error) {
	s, err := types.NewSignatureFromBytes(0, sig)
	if err != nil {
		return common.Address{}, err
	}

	return s.Recover(digest)
}

// RecoverSigners returns the address behind each signature, in signature order.
func (v *VAA) RecoverSigners() ([]common.Address, error) {
	digest, err := v.SigningDigest()
	if err != nil {
		return nil, err
	}

	addrs := make([]common.Address, 0, len(v.Signatures))
	for _, sig := range v.Signatures {
		addr, err := sig.Recover(digest)
		if err != nil {
			return nil, fmt.Errorf("failed to recover signature %d: %w", sig.Index, err)
		}
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

// VerifySignatures checks every signature against the guardian keys, where keys[i] is guardian i.
// Indexes must be strictly ascending. It does not check quorum, see types.GuardianSet.HasQuorum.
func (v *VAA) VerifySignatures(keys []common.Address) error {
	digest, err := v.SigningDigest()
	if err != nil {
		return err
	}

	last := -1
	for _, sig := range v.Signatures {
		if int(sig.Index) <= last {
			return NewInvalidSignatureError(sig.Index, common.Address{}, "guardian index out of order")
		}
		last = int(sig.Index)

		if int(sig.Index) >= len(keys) {
			return NewInvalidSignatureError(sig.Index, common.Address{},
				fmt.Sprintf("guardian index beyond set of %d", len(keys)))
		}

		addr, err := sig.Recover(digest)
		if err != nil {
			return NewInvalidSignatureError(sig.Index, common.Address{}, err.Error())
		}
		if addr != keys[sig.Index] {
			return NewInvalidSignatureError(sig.Index, addr,
				fmt.Sprintf("expected guardian %s", keys[sig.Index]))
		}
	}

	return nil
}
