package evm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// hexPattern matches "0x" followed by one or more hex characters
	hexPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)
	// bytesArrayPattern matches "[[...]]" and captures the content between brackets
	bytesArrayPattern = regexp.MustCompile(`(?s)\[\[(.*)\]\]`)
)

const (
	selectorSize   = 4
	revertedPrefix = "execution reverted:"
)

// ExecutionError is returned when the contract call that delivers a VAA fails. The wormhole
// contracts revert with Error(string) reasons such as "invalid guardian set", which are decoded
// when the node returns them.
type ExecutionError struct {
	Contract common.Address
	Method   string
	// RawRevertData is the revert data returned by the node, selector included
	RawRevertData []byte
	// RevertReason is the human-readable revert reason
	RevertReason string
	// OriginalError is the original error from the contract binding
	OriginalError error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("execution of %s on %s failed: %v", e.Method, e.Contract.Hex(), e.OriginalError)
	if e.RevertReason != "" {
		return fmt.Sprintf("%s (revert reason: %s)", msg, e.RevertReason)
	}
	if len(e.RawRevertData) > 0 {
		return fmt.Sprintf("%s (raw revert data: %s)", msg, common.Bytes2Hex(e.RawRevertData))
	}

	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.OriginalError
}

// BuildExecutionError wraps the error of a failed contract call with its revert reason.
func BuildExecutionError(method string, contract common.Address, err error) *ExecutionError {
	raw, reason := extractRevertReasonFromError(err)

	return &ExecutionError{
		Contract:      contract,
		Method:        method,
		RawRevertData: raw,
		RevertReason:  reason,
		OriginalError: err,
	}
}

// extractRevertReasonFromError extracts the raw revert data and the decoded revert reason from a
// bind error. Structured rpc error data is preferred over data found in the error message.
func extractRevertReasonFromError(err error) ([]byte, string) {
	if err == nil {
		return nil, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data := common.FromHex(s); len(data) > 0 {
				return data, decodeRevertReason(data)
			}
		}
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "revert") {
		return nil, ""
	}

	if data := extractHexEncodedRevertData(errStr); len(data) > 0 {
		return data, decodeRevertReason(data)
	}

	if data := extractBytesArrayRevertData(errStr); len(data) > 0 {
		return data, decodeRevertReason(data)
	}

	// Nodes that decode Error(string) themselves return "execution reverted: <reason>"
	if idx := strings.Index(errStr, revertedPrefix); idx != -1 {
		return nil, strings.TrimSpace(errStr[idx+len(revertedPrefix):])
	}

	return nil, ""
}

// extractHexEncodedRevertData extracts hex-encoded revert data (0x...) from an error string.
// Returns the extracted bytes if found, nil otherwise.
func extractHexEncodedRevertData(errStr string) []byte {
	hexStr := hexPattern.FindString(errStr)
	if hexStr == "" {
		return nil
	}

	if data := common.FromHex(hexStr); len(data) > 0 {
		return data
	}

	return nil
}

// extractBytesArrayRevertData extracts bytes array format revert data from an error string.
// Format: "[[...bytes...]]" where bytes are space-separated decimal values.
func extractBytesArrayRevertData(errStr string) []byte {
	matches := bytesArrayPattern.FindStringSubmatch(errStr)
	if len(matches) < 2 { //nolint
		return nil
	}

	return parseBytesFromString(matches[1])
}

// parseBytesFromString parses a string representation of bytes like "8 195 121 160 ..."
func parseBytesFromString(s string) []byte {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil
	}
	bytes := make([]byte, 0, len(parts))
	for _, part := range parts {
		if val, err := strconv.ParseUint(part, 10, 8); err == nil {
			bytes = append(bytes, byte(val))
		}
	}
	if len(bytes) == 0 {
		return nil
	}

	return bytes
}

// decodeRevertReason decodes Error(string) and Panic(uint256) revert data. Returns an empty string
// when the data is neither.
func decodeRevertReason(data []byte) string {
	if len(data) < selectorSize {
		return ""
	}

	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason
	}

	return ""
}
