package payload

import "fmt"

// MalformedPayloadError is returned when a governance payload matches a module and action but its
// body cannot be read.
type MalformedPayloadError struct {
	Module Module
	Type   string
	Err    error
}

func NewMalformedPayloadError(module Module, typ string, err error) *MalformedPayloadError {
	return &MalformedPayloadError{Module: module, Type: typ, Err: err}
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed %s %s payload: %v", e.Module, e.Type, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// InvalidFieldError is returned when a payload field cannot be encoded.
type InvalidFieldError struct {
	Type   string
	Field  string
	Reason string
}

func NewInvalidFieldError(typ, field, reason string) *InvalidFieldError {
	return &InvalidFieldError{Type: typ, Field: field, Reason: reason}
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s field %s: %s", e.Type, e.Field, e.Reason)
}
