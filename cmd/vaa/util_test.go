package vaa

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/vaa/types"
)

func TestDecodeVAAArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    []byte
		wantErr bool
	}{
		{name: "hex", give: "0102ff", want: []byte{1, 2, 0xff}},
		{name: "prefixed hex", give: "0x0102ff", want: []byte{1, 2, 0xff}},
		{name: "base64", give: base64.StdEncoding.EncodeToString([]byte("vaa")), want: []byte("vaa")},
		{name: "failure: empty", give: "", wantErr: true},
		{name: "failure: garbage", give: "%%%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeVAAArg(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chain   types.ChainID
		give    string
		want    string
		wantErr string
	}{
		{
			name:  "evm",
			chain: types.ChainIDEthereum,
			give:  "0x0290FB167208Af455bB137780163b7B7a9a10C16",
			want:  "0000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16",
		},
		{
			name:  "solana",
			chain: types.ChainIDSolana,
			give:  "So11111111111111111111111111111111111111112",
			want:  "069b8857feab8184fb687f634618c035dac439dc1aeb3b5598a0f00000000001",
		},
		{
			name:  "aptos account",
			chain: types.ChainIDAptos,
			give:  "0x1",
			want:  "0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			name:  "aptos coin type",
			chain: types.ChainIDAptos,
			give:  "0x1::aptos_coin::AptosCoin",
			want:  "a867703f5395cb2965feb7ebff5cdf39b771fc6156085da3ae4147a00be91b38",
		},
		{
			name:    "failure: solana address in hex",
			chain:   types.ChainIDSolana,
			give:    "0x01",
			wantErr: `invalid solana address "0x01"`,
		},
		{
			name:    "failure: unknown chain",
			chain:   types.ChainID(9999),
			give:    "0x01",
			wantErr: "unknown chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseAddress(tt.chain, tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, types.MustStringToAddress(tt.want), got)
		})
	}
}
