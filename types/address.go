package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the width of every address field on the wire.
const AddressLength = 32

// Address is a 32 byte address. Addresses of chains with shorter native addresses are left padded
// with zeros.
type Address [AddressLength]byte

// BytesToAddress left pads b to 32 bytes.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) > AddressLength {
		return a, fmt.Errorf("address longer than %d bytes: %d", AddressLength, len(b))
	}
	copy(a[AddressLength-len(b):], b)

	return a, nil
}

// StringToAddress parses a hex address, with or without 0x prefix, and left pads it to 32 bytes.
func StringToAddress(value string) (Address, error) {
	value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if len(value)%2 != 0 {
		value = "0" + value
	}

	b, err := hex.DecodeString(value)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex address %q: %w", value, err)
	}

	return BytesToAddress(b)
}

// MustStringToAddress is like StringToAddress but panics on error. Use it for constants only.
func MustStringToAddress(value string) Address {
	a, err := StringToAddress(value)
	if err != nil {
		panic(err)
	}

	return a
}

// EVMAddressToAddress left pads a 20 byte EVM address.
func EVMAddressToAddress(addr common.Address) Address {
	var a Address
	copy(a[AddressLength-common.AddressLength:], addr.Bytes())

	return a
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])

	return b
}

// String returns the address as lower case hex without prefix.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalJSON renders the address as a hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses a hex string.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	addr, err := StringToAddress(s)
	if err != nil {
		return err
	}
	*a = addr

	return nil
}
