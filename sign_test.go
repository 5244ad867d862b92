package vaa

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/vaa/internal/testutils"
	"github.com/wormhole-foundation/vaa/types"
)

// fakeSigner returns the configured signature and error.
type fakeSigner struct {
	sig []byte
	err error
}

func (f *fakeSigner) Sign([]byte) ([]byte, error) {
	return f.sig, f.err
}

func (f *fakeSigner) GetAddress() (common.Address, error) {
	return common.Address{}, f.err
}

func TestSign(t *testing.T) {
	t.Parallel()

	v, err := Parse(mustHex(t, coreUpgradeHex))
	require.NoError(t, err)

	unsigned := v.Clone()
	unsigned.Signatures = nil

	got, err := Sign(unsigned, []Signer{testutils.DevnetGuardian(), testutils.MustECDSASignerFromHex(testutils.SecondGuardianKeyHex)})
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i, sig := range got {
		assert.Equal(t, v.Signatures[i].Index, sig.Index)
		assert.Equal(t, hex.EncodeToString(v.Signatures[i].ToBytes()), hex.EncodeToString(sig.ToBytes()))
	}
	assert.Nil(t, unsigned.Signatures)
}

func TestSign_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signers []Signer
		wantErr string
	}{
		{
			name:    "too many signers",
			signers: make([]Signer, MaxSignatures+1),
			wantErr: "too many signatures: 256, at most 255 allowed",
		},
		{
			name:    "signer fails",
			signers: []Signer{testutils.DevnetGuardian(), &fakeSigner{err: errors.New("device locked")}},
			wantErr: "failed to sign as guardian 1: device locked",
		},
		{
			name:    "signature of the wrong length",
			signers: []Signer{&fakeSigner{sig: []byte{0x01}}},
			wantErr: "invalid signature length: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Sign(&VAA{Version: 1, Timestamp: unixOne}, tt.signers)
			require.EqualError(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestResign(t *testing.T) {
	t.Parallel()

	v, err := Parse(mustHex(t, registrationHex))
	require.NoError(t, err)
	v.GuardianSetIndex = 3
	second := testutils.MustECDSASignerFromHex(testutils.SecondGuardianKeyHex)

	got, err := Resign(v, []Signer{testutils.DevnetGuardian(), second})
	require.NoError(t, err)

	assert.Equal(t, uint32(0), got.GuardianSetIndex)
	require.Len(t, got.Signatures, 2)
	require.NoError(t, got.VerifySignatures([]common.Address{testutils.DevnetGuardian().Address(), second.Address()}))
	assert.Equal(t, v.Payload, got.Payload)

	// The input keeps its guardian set and single signature.
	assert.Equal(t, uint32(3), v.GuardianSetIndex)
	assert.Len(t, v.Signatures, 1)
}

func TestResign_Golden(t *testing.T) {
	t.Parallel()

	v, err := Parse(mustHex(t, registrationHex))
	require.NoError(t, err)

	got, err := Resign(v, []Signer{testutils.DevnetGuardian()})
	require.NoError(t, err)

	raw, err := got.Marshal()
	require.NoError(t, err)
	assert.Equal(t, registrationHex, hex.EncodeToString(raw))
}

func TestResign_Errors(t *testing.T) {
	t.Parallel()

	twoSigs, err := Parse(mustHex(t, coreUpgradeHex))
	require.NoError(t, err)

	noSigs := twoSigs.Clone()
	noSigs.Signatures = nil

	_, err = Resign(noSigs, []Signer{testutils.DevnetGuardian()})
	require.ErrorIs(t, err, ErrNoSignatures)

	_, err = Resign(twoSigs, []Signer{testutils.DevnetGuardian()})
	var tooMany *TooManySignaturesError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 2, tooMany.Count)
	assert.Equal(t, 1, tooMany.Max)
}

func TestAddSignature(t *testing.T) {
	t.Parallel()

	want, err := Parse(mustHex(t, coreUpgradeHex))
	require.NoError(t, err)

	unsigned := want.Clone()
	unsigned.Signatures = nil

	// Signing out of order still yields ascending indexes.
	one, err := unsigned.AddSignature(testutils.MustECDSASignerFromHex(testutils.SecondGuardianKeyHex), 1)
	require.NoError(t, err)
	both, err := one.AddSignature(testutils.DevnetGuardian(), 0)
	require.NoError(t, err)

	raw, err := both.Marshal()
	require.NoError(t, err)
	assert.Equal(t, coreUpgradeHex, hex.EncodeToString(raw))
	assert.Len(t, one.Signatures, 1)
	assert.Empty(t, unsigned.Signatures)

	// Signing again as guardian 1 replaces its signature.
	replaced, err := both.AddSignature(testutils.DevnetGuardian(), 1)
	require.NoError(t, err)
	require.Len(t, replaced.Signatures, 2)
	assert.Equal(t, replaced.Signatures[0].ToBytes(), replaced.Signatures[1].ToBytes())
	assert.Equal(t, []uint8{0, 1}, []uint8{replaced.Signatures[0].Index, replaced.Signatures[1].Index})
}

func TestAddSignature_Errors(t *testing.T) {
	t.Parallel()

	full := &VAA{Version: 1, Timestamp: unixOne}
	for i := range MaxSignatures {
		full.Signatures = append(full.Signatures, &types.Signature{Index: uint8(i)})
	}

	_, err := (&VAA{Version: 1, Timestamp: unixOne}).AddSignature(&fakeSigner{err: errors.New("device locked")}, 4)
	require.EqualError(t, err, "failed to sign as guardian 4: device locked")

	_, err = full.AddSignature(testutils.DevnetGuardian(), 255)
	require.EqualError(t, err, "too many signatures: 256, at most 255 allowed")

	// Index 254 is taken, so the signature replaces it.
	got, err := full.AddSignature(testutils.DevnetGuardian(), 254)
	require.NoError(t, err)
	assert.Len(t, got.Signatures, MaxSignatures)
}
