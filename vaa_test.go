package vaa

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/vaa/types"
)

const (
	// registrationHex registers the Ethereum token bridge, signed by the devnet guardian.
	registrationHex = "010000000001003c24dcbbbb0d1c747980ba8d0310e0a46c44ea7cf6b7008b5524b48fcfff00243b015dc423b27fbfb28cf43a9d0962ad639b80e4e598928790336924f9fbc3cd00000000010000000100010000000000000000000000000000000000000000000000000000000000000004000000000000000100000000000000000000000000000000000000000000546f6b656e42726964676501000000020000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16"
	registrationDigest = "7e1fad1176330a14e8f9f3bb398a20f2d315f132555510aa6e364a10911e964b"

	// coreUpgradeHex upgrades the Ethereum core contract, signed by two guardians.
	coreUpgradeHex    = "01000000000200996cd852d509f4ae392ce48785143449334ffe71d8a4c0bb32f535e8de172b7e4bfe38736919e110bda20a558fe84856badc7a4559a028c4c0ab6a935bb4c2fe0001a06a62aa7bfded191d318ddc70440cbd439324a3c1ac3bbac0c1f218604dc0e232551b5ebcc4f6bb1c5dfcbc2193a689e1d23947eb33797aba2d3e733ef8e3d10100000001000000010001000000000000000000000000000000000000000000000000000000000000000400000000000000070000000000000000000000000000000000000000000000000000000000436f72650100020000000000000000000000000000000000000000000000000000000000000004"
	coreUpgradeDigest = "7566e10a4c72fdb064d078fb9adb851a9159529eee37f66b6e9f1809dab85ddc"

	// transferHex is a devnet token transfer from Ethereum to Solana.
	transferHex    = "01000000000100e424aef95296cb0f2185f351086c7c0b9cd031d1288f0537d04ab20d5fc709416224b2bd9a8010a81988aa9cb38b378eb915f88b67e32a765928d948dc02077e00000102584a8d000000020000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16000000000000000f0f01000000000000000000000000000000000000000000000000000000002b369f40000000000000000000000000ddb64fe46a91d46ee29420539fc25fd07c5fea3e000221c175fcd8e3a19fe2e0deae96534f0f4e6a896f4df0e3ec5345fe27ac3f63f000010000000000000000000000000000000000000000000000000000000000000000"
	transferDigest = "78a3ef7e4f695371ae31124c5cc4fbe9d80389daae78287a98334bf390da320e"
)

var unixOne = time.Unix(1, 0).UTC()

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse(mustHex(t, transferHex))
	require.NoError(t, err)

	assert.Equal(t, uint8(1), got.Version)
	assert.Equal(t, uint32(0), got.GuardianSetIndex)
	require.Len(t, got.Signatures, 1)
	assert.Equal(t, uint8(0), got.Signatures[0].Index)
	assert.Equal(t, time.Unix(66136, 0).UTC(), got.Timestamp)
	assert.Equal(t, uint32(1250754560), got.Nonce)
	assert.Equal(t, types.ChainIDEthereum, got.EmitterChain)
	assert.Equal(t, types.MustStringToAddress("0x0290fb167208af455bb137780163b7b7a9a10c16"), got.EmitterAddress)
	assert.Equal(t, uint64(15), got.Sequence)
	assert.Equal(t, uint8(15), got.ConsistencyLevel)
	assert.Len(t, got.Payload, 133)
	assert.Equal(t, "2/0000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16/15", got.MessageID())
}

func TestParseMarshal_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		give       string
		wantDigest string
		wantSigs   int
	}{
		{name: "governance with one signature", give: registrationHex, wantDigest: registrationDigest, wantSigs: 1},
		{name: "governance with two signatures", give: coreUpgradeHex, wantDigest: coreUpgradeDigest, wantSigs: 2},
		{name: "token transfer", give: transferHex, wantDigest: transferDigest, wantSigs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse(mustHex(t, tt.give))
			require.NoError(t, err)
			assert.Len(t, v.Signatures, tt.wantSigs)

			digest, err := v.HexDigest()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDigest, digest)

			got, err := v.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.give, hex.EncodeToString(got))
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("00", BodyLength)

	tests := []struct {
		name      string
		give      string
		wantField string
		wantErr   string
	}{
		{
			name:      "empty",
			give:      "",
			wantField: "length",
			wantErr:   "malformed VAA: length: VAA is too short: 0 bytes, need at least 57",
		},
		{
			name:      "one byte short of an empty VAA",
			give:      "01" + "00000000" + "00" + strings.Repeat("00", BodyLength-1),
			wantField: "length",
			wantErr:   "malformed VAA: length: VAA is too short: 56 bytes, need at least 57",
		},
		{
			name:      "unsupported version",
			give:      "02" + "00000000" + "00" + body,
			wantField: "version",
			wantErr:   "malformed VAA: version: unsupported version 2",
		},
		{
			name:      "signature count beyond the data",
			give:      "01" + "00000000" + "01" + body,
			wantField: "signatures",
			wantErr:   "malformed VAA: signatures: 1 signatures and a body need 117 bytes, 51 remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(mustHex(t, tt.give))
			require.EqualError(t, err, tt.wantErr)
			assert.Nil(t, got)

			var malformed *MalformedEnvelopeError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantField, malformed.Field)
		})
	}
}

func TestParse_EmptyPayload(t *testing.T) {
	t.Parallel()

	give := "01" + "00000000" + "00" + strings.Repeat("00", BodyLength)
	v, err := Parse(mustHex(t, give))
	require.NoError(t, err)
	assert.Empty(t, v.Signatures)
	assert.Empty(t, v.Payload)

	got, err := v.Marshal()
	require.NoError(t, err)
	assert.Equal(t, give, hex.EncodeToString(got))
}

func TestMarshal_Errors(t *testing.T) {
	t.Parallel()

	tooMany := make([]*types.Signature, MaxSignatures+1)
	for i := range tooMany {
		tooMany[i] = &types.Signature{}
	}

	tests := []struct {
		name    string
		give    *VAA
		wantErr string
	}{
		{
			name:    "too many signatures",
			give:    &VAA{Version: 1, Signatures: tooMany, Timestamp: time.Unix(1, 0)},
			wantErr: "too many signatures: 256, at most 255 allowed",
		},
		{
			name:    "timestamp before the epoch",
			give:    &VAA{Version: 1, Timestamp: time.Unix(-1, 0).UTC()},
			wantErr: "malformed VAA: timestamp: 1969-12-31 23:59:59 +0000 UTC does not fit in 32 bits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.give.Marshal()
			require.EqualError(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	v, err := Parse(mustHex(t, coreUpgradeHex))
	require.NoError(t, err)

	c := v.Clone()
	c.Payload[0] = 0xff
	c.Signatures[0].V = 9
	c.Signatures = c.Signatures[:1]

	assert.Equal(t, byte(0), v.Payload[0])
	assert.Equal(t, uint8(0), v.Signatures[0].V)
	assert.Len(t, v.Signatures, 2)
}

func TestHasSignatureFrom(t *testing.T) {
	t.Parallel()

	v, err := Parse(mustHex(t, coreUpgradeHex))
	require.NoError(t, err)

	assert.True(t, v.HasSignatureFrom(0))
	assert.True(t, v.HasSignatureFrom(1))
	assert.False(t, v.HasSignatureFrom(2))
}

func TestMessageID(t *testing.T) {
	t.Parallel()

	v := &VAA{EmitterChain: types.ChainIDSolana, EmitterAddress: GovernanceEmitter, Sequence: 1}

	assert.Equal(t, "1/0000000000000000000000000000000000000000000000000000000000000004/1", v.MessageID())
}

func TestSigningDigest(t *testing.T) {
	t.Parallel()

	v := &VAA{
		Version:          1,
		Timestamp:        time.Unix(0, 0).UTC(),
		Nonce:            1,
		EmitterChain:     types.ChainIDSolana,
		EmitterAddress:   GovernanceEmitter,
		Sequence:         1,
		ConsistencyLevel: 32,
		Payload:          []byte("aaaaaa"),
	}

	body, err := v.SigningBody()
	require.NoError(t, err)
	assert.Len(t, body, BodyLength+6)

	digest, err := v.HexDigest()
	require.NoError(t, err)
	assert.Len(t, digest, 64)

	// The header is not part of the digest.
	tests := []struct {
		name   string
		modify func(v *VAA)
	}{
		{name: "signatures", modify: func(v *VAA) { v.Signatures = []*types.Signature{{Index: 3}} }},
		{name: "version", modify: func(v *VAA) { v.Version = 2 }},
		{name: "guardian set index", modify: func(v *VAA) { v.GuardianSetIndex = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			modified := v.Clone()
			tt.modify(modified)

			got, err := modified.HexDigest()
			require.NoError(t, err)
			assert.Equal(t, digest, got)
		})
	}

	// The body is.
	resequenced := v.Clone()
	resequenced.Sequence = 2
	got, err := resequenced.HexDigest()
	require.NoError(t, err)
	assert.NotEqual(t, digest, got)
}
