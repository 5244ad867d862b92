package sdkerrors

import (
	"fmt"

	"github.com/wormhole-foundation/vaa/types"
)

type InvalidChainIDError struct {
	ReceivedChainID types.ChainID
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %d", uint16(e.ReceivedChainID))
}

func NewInvalidChainIDError(receivedChainID types.ChainID) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// UnsupportedPayloadError is returned when a submitter has no way to deliver a payload.
type UnsupportedPayloadError struct {
	ChainFamily string
	Module      string
	Type        string
}

func (e *UnsupportedPayloadError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("%s payloads are not supported on %s", e.Type, e.ChainFamily)
	}

	return fmt.Sprintf("%s %s payloads are not supported on %s", e.Module, e.Type, e.ChainFamily)
}

func NewUnsupportedPayloadError(family, module, typ string) *UnsupportedPayloadError {
	return &UnsupportedPayloadError{ChainFamily: family, Module: module, Type: typ}
}

// MissingContractError is returned when no contract address is configured for a module.
type MissingContractError struct {
	Module string
}

func (e *MissingContractError) Error() string {
	return "no contract address configured for module " + e.Module
}

func NewMissingContractError(module string) *MissingContractError {
	return &MissingContractError{Module: module}
}
