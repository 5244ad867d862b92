package vaa

import (
	"fmt"
	"slices"

	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/types"
)

// Sign signs the digest of v with every signer. The signature of signers[i] gets guardian index i,
// so signers must be ordered as the guardian set is. v is not modified.
func Sign(v *VAA, signers []Signer) ([]*types.Signature, error) {
	if len(signers) > MaxSignatures {
		return nil, NewTooManySignaturesError(len(signers), MaxSignatures)
	}

	digest, err := v.SigningDigest()
	if err != nil {
		return nil, err
	}

	sigs := make([]*types.Signature, 0, len(signers))
	for i, signer := range signers {
		index, err := safecast.IntToUint8(i)
		if err != nil {
			return nil, err
		}

		sig, err := signWith(signer, digest.Bytes(), index)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}

	return sigs, nil
}

// Resign replaces the single signature of v with signatures from signers, for example to move a
// VAA signed by a devnet guardian onto another guardian set. The result uses guardian set 0.
func Resign(v *VAA, signers []Signer) (*VAA, error) {
	switch n := len(v.Signatures); {
	case n == 0:
		return nil, ErrNoSignatures
	case n > 1:
		return nil, NewTooManySignaturesError(n, 1)
	}

	sigs, err := Sign(v, signers)
	if err != nil {
		return nil, err
	}

	out := v.Clone()
	out.GuardianSetIndex = 0
	out.Signatures = sigs

	return out, nil
}

// AddSignature returns a copy of v signed by signer as the guardian at index. Signatures stay
// sorted by index, and an existing signature for the same index is replaced.
func (v *VAA) AddSignature(signer Signer, index uint8) (*VAA, error) {
	digest, err := v.SigningDigest()
	if err != nil {
		return nil, err
	}

	sig, err := signWith(signer, digest.Bytes(), index)
	if err != nil {
		return nil, err
	}

	out := v.Clone()
	out.Signatures = slices.DeleteFunc(out.Signatures, func(s *types.Signature) bool {
		return s.Index == index
	})
	if len(out.Signatures) >= MaxSignatures {
		return nil, NewTooManySignaturesError(len(out.Signatures)+1, MaxSignatures)
	}
	out.Signatures = append(out.Signatures, sig)
	slices.SortFunc(out.Signatures, func(a, b *types.Signature) int {
		return int(a.Index) - int(b.Index)
	})

	return out, nil
}

func signWith(signer Signer, digest []byte, index uint8) (*types.Signature, error) {
	raw, err := signer.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("failed to sign as guardian %d: %w", index, err)
	}

	return types.NewSignatureFromBytes(index, raw)
}
