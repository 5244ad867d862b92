package aptos

import (
	"encoding/binary"

	"github.com/aptos-labs/aptos-go-sdk"
	"golang.org/x/crypto/sha3"

	"github.com/wormhole-foundation/vaa/types"
)

// resourceAccountScheme is the address derivation scheme of resource accounts.
const resourceAccountScheme = 0xff

// ParseAddress parses a hex account address. Short addresses such as 0x1 are accepted.
func ParseAddress(address string) (aptos.AccountAddress, error) {
	addr := aptos.AccountAddress{}
	if err := addr.ParseStringRelaxed(address); err != nil {
		return aptos.AccountAddress{}, err
	}

	return addr, nil
}

func mustParseAddress(address string) aptos.AccountAddress {
	addr, err := ParseAddress(address)
	if err != nil {
		panic(err)
	}

	return addr
}

// WrappedAssetAddress returns the resource account the token bridge creates for the wrapped
// version of the origin token. Its seed is the origin chain, "::" and the origin address.
func WrappedAssetAddress(bridge aptos.AccountAddress, chain types.ChainID, origin types.Address) aptos.AccountAddress {
	h := sha3.New256()
	h.Write(bridge[:])
	h.Write(binary.BigEndian.AppendUint16(nil, uint16(chain)))
	h.Write([]byte("::"))
	h.Write(origin[:])
	h.Write([]byte{resourceAccountScheme})

	var addr aptos.AccountAddress
	copy(addr[:], h.Sum(nil))

	return addr
}

// WrappedCoinType is the coin type published at a wrapped asset address.
func WrappedCoinType(wrapped aptos.AccountAddress) aptos.TypeTag {
	return aptos.TypeTag{Value: &aptos.StructTag{
		Address:    wrapped,
		Module:     "coin",
		Name:       "T",
		TypeParams: []aptos.TypeTag{},
	}}
}
