package vaa

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wormhole-foundation/vaa/types"
)

// MalformedEnvelopeError is returned when bytes cannot be decoded as a VAA.
type MalformedEnvelopeError struct {
	Field  string
	Reason string
}

// NewMalformedEnvelopeError creates a new MalformedEnvelopeError.
func NewMalformedEnvelopeError(field, reason string) *MalformedEnvelopeError {
	return &MalformedEnvelopeError{Field: field, Reason: reason}
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed VAA: %s: %s", e.Field, e.Reason)
}

// TooManySignaturesError is returned when more signatures are attached, or requested, than a VAA
// can carry, or when a resign is attempted on a VAA with more than one signature.
type TooManySignaturesError struct {
	Count int
	Max   int
}

// NewTooManySignaturesError creates a new TooManySignaturesError.
func NewTooManySignaturesError(count, limit int) *TooManySignaturesError {
	return &TooManySignaturesError{Count: count, Max: limit}
}

func (e *TooManySignaturesError) Error() string {
	return fmt.Sprintf("too many signatures: %d, at most %d allowed", e.Count, e.Max)
}

// ErrNoSignatures is returned when a resign is attempted on a VAA without a signature.
var ErrNoSignatures = errors.New("VAA has no signatures")

// ErrAmbiguousTarget is returned when neither the payload nor the caller names a target chain.
var ErrAmbiguousTarget = errors.New("target chain is ambiguous: payload names no chain and no override was given")

// ChainMismatchError is returned when the chain named by the payload and the caller's override
// differ.
type ChainMismatchError struct {
	Payload  types.ChainID
	Override types.ChainID
}

// NewChainMismatchError creates a new ChainMismatchError.
func NewChainMismatchError(payloadChain, override types.ChainID) *ChainMismatchError {
	return &ChainMismatchError{Payload: payloadChain, Override: override}
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("payload targets chain %s (%d) but chain %s (%d) was requested",
		e.Payload, uint16(e.Payload), e.Override, uint16(e.Override))
}

// SubmitterNotFoundError is returned when no submitter is registered for the target chain.
type SubmitterNotFoundError struct {
	Chain types.ChainID
}

// NewSubmitterNotFoundError creates a new SubmitterNotFoundError.
func NewSubmitterNotFoundError(chain types.ChainID) *SubmitterNotFoundError {
	return &SubmitterNotFoundError{Chain: chain}
}

func (e *SubmitterNotFoundError) Error() string {
	return fmt.Sprintf("no submitter registered for chain %s (%d)", e.Chain, uint16(e.Chain))
}

// SubmitError wraps a failure reported by a chain submitter.
type SubmitError struct {
	Chain types.ChainID
	Err   error
}

// NewSubmitError creates a new SubmitError.
func NewSubmitError(chain types.ChainID, err error) *SubmitError {
	return &SubmitError{Chain: chain, Err: err}
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to submit to chain %s: %v", e.Chain, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// InvalidSignatureError is returned when a signature does not belong to the guardian at its
// index.
type InvalidSignatureError struct {
	Index            uint8
	RecoveredAddress common.Address
	Reason           string
}

// NewInvalidSignatureError creates a new InvalidSignatureError.
func NewInvalidSignatureError(index uint8, recovered common.Address, reason string) *InvalidSignatureError {
	return &InvalidSignatureError{Index: index, RecoveredAddress: recovered, Reason: reason}
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("invalid signature %d from %s: %s", e.Index, e.RecoveredAddress, e.Reason)
}
