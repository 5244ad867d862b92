package vaa

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/wormhole-foundation/vaa/types"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewMalformedEnvelopeError("version", "unsupported version 2"), "malformed VAA: version: unsupported version 2"},
		{NewTooManySignaturesError(256, 255), "too many signatures: 256, at most 255 allowed"},
		{NewChainMismatchError(types.ChainIDEthereum, types.ChainIDSolana), "payload targets chain ethereum (2) but chain solana (1) was requested"},
		{NewSubmitterNotFoundError(types.ChainIDAptos), "no submitter registered for chain aptos (22)"},
		{NewSubmitError(types.ChainIDBSC, errors.New("reverted")), "failed to submit to chain bsc: reverted"},
		{
			NewInvalidSignatureError(1, common.HexToAddress("0x1"), "not the guardian at this index"),
			"invalid signature 1 from 0x0000000000000000000000000000000000000001: not the guardian at this index",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestSubmitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("rpc down")
	err := error(NewSubmitError(types.ChainIDEthereum, cause))

	assert.ErrorIs(t, err, cause)
}
