package evm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorStringData returns the revert data of Error(string) with reason.
func errorStringData(t *testing.T, reason string) []byte {
	t.Helper()

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)

	return append(common.FromHex("0x08c379a0"), packed...)
}

// revertDataError mirrors the json-rpc error returned by nodes for reverted calls.
type revertDataError struct {
	data any
}

func (e *revertDataError) Error() string  { return "execution reverted" }
func (e *revertDataError) ErrorData() any { return e.data }

func TestExecutionError_Error(t *testing.T) {
	t.Parallel()

	contract := common.HexToAddress("0x3ee18B2214AFF97000D974cf647E7C347E8fa585")

	tests := []struct {
		name string
		give *ExecutionError
		want string
	}{
		{
			name: "with revert reason",
			give: &ExecutionError{
				Contract:      contract,
				Method:        "completeTransfer",
				RawRevertData: []byte{0x08, 0xc3, 0x79, 0xa0},
				RevertReason:  "transfer already completed",
				OriginalError: errors.New("execution reverted"),
			},
			want: "execution of completeTransfer on 0x3ee18B2214AFF97000D974cf647E7C347E8fa585 failed: execution reverted (revert reason: transfer already completed)",
		},
		{
			name: "with raw revert data only",
			give: &ExecutionError{
				Contract:      contract,
				Method:        "createWrapped",
				RawRevertData: []byte{0xde, 0xad, 0xbe, 0xef},
				OriginalError: errors.New("execution reverted"),
			},
			want: "execution of createWrapped on 0x3ee18B2214AFF97000D974cf647E7C347E8fa585 failed: execution reverted (raw revert data: deadbeef)",
		},
		{
			name: "without revert data",
			give: &ExecutionError{
				Contract:      contract,
				Method:        "registerChain",
				OriginalError: errors.New("insufficient funds for gas"),
			},
			want: "execution of registerChain on 0x3ee18B2214AFF97000D974cf647E7C347E8fa585 failed: insufficient funds for gas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Error())
		})
	}
}

func TestExecutionError_Unwrap(t *testing.T) {
	t.Parallel()

	original := errors.New("nonce too low")
	err := BuildExecutionError("registerChain", common.Address{}, original)

	require.ErrorIs(t, err, original)
	assert.Empty(t, err.RawRevertData)
	assert.Empty(t, err.RevertReason)
}

func TestBuildExecutionError(t *testing.T) {
	t.Parallel()

	data := errorStringData(t, "invalid guardian set")

	tests := []struct {
		name       string
		give       error
		wantData   []byte
		wantReason string
	}{
		{
			name:       "rpc error data",
			give:       &revertDataError{data: common.Bytes2Hex(data)},
			wantData:   data,
			wantReason: "invalid guardian set",
		},
		{
			name:       "wrapped rpc error data",
			give:       fmt.Errorf("failed to send: %w", &revertDataError{data: "0x" + common.Bytes2Hex(data)}),
			wantData:   data,
			wantReason: "invalid guardian set",
		},
		{
			name:       "hex revert data in message",
			give:       errors.New("execution reverted: 0x" + common.Bytes2Hex(data)),
			wantData:   data,
			wantReason: "invalid guardian set",
		},
		{
			name:       "bytes array revert data in message",
			give:       errors.New("execution reverted [[222 173 190 239]]"),
			wantData:   []byte{0xde, 0xad, 0xbe, 0xef},
			wantReason: "",
		},
		{
			name:       "reason decoded by the node",
			give:       errors.New("execution reverted: chain already registered"),
			wantData:   nil,
			wantReason: "chain already registered",
		},
		{
			name:       "non string rpc error data",
			give:       &revertDataError{data: 42},
			wantData:   nil,
			wantReason: "",
		},
		{
			name:       "unrelated error with address",
			give:       errors.New("insufficient funds for 0xbeFA429d57cD18b7F8A4d91A2da9AB4AF05d0FBe"),
			wantData:   nil,
			wantReason: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildExecutionError("submitNewGuardianSet", common.Address{}, tt.give)

			assert.Equal(t, tt.wantData, got.RawRevertData)
			assert.Equal(t, tt.wantReason, got.RevertReason)
			require.ErrorIs(t, got, tt.give)
		})
	}
}

func TestExtractHexEncodedRevertData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		errStr string
		want   []byte
	}{
		{
			name:   "valid hex string",
			errStr: "execution reverted: 0x1234567890abcdef",
			want:   common.FromHex("0x1234567890abcdef"),
		},
		{
			name:   "hex stops at non-hex character",
			errStr: "0x123456xyz789",
			want:   common.FromHex("0x123456"),
		},
		{
			name:   "multiple hex strings - matches first",
			errStr: "0x123456 0xabcdef",
			want:   common.FromHex("0x123456"),
		},
		{
			name:   "no hex pattern",
			errStr: "just some text without hex",
		},
		{
			name:   "only 0x prefix",
			errStr: "0x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extractHexEncodedRevertData(tt.errStr))
		})
	}
}

func TestParseBytesFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{
			name:  "valid bytes string",
			input: "8 195 121 160",
			want:  []byte{8, 195, 121, 160},
		},
		{
			name:  "with whitespace variations",
			input: "  8\t195\n121   160  ",
			want:  []byte{8, 195, 121, 160},
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "invalid values skipped",
			input: "8 abc 121 256 -1 160",
			want:  []byte{8, 121, 160},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, parseBytesFromString(tt.input))
		})
	}
}
