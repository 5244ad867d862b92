package payload

import (
	"bytes"
	"fmt"
)

// Module names the contract a payload is addressed to. Governance payloads carry it on the wire as
// a 32 byte tag.
type Module string

const (
	Core        Module = "Core"
	TokenBridge Module = "TokenBridge"
	NFTBridge   Module = "NFTBridge"
)

// Governance action bytes of the core contract.
const (
	ActionCoreContractUpgrade uint8 = 1
	ActionGuardianSetUpgrade  uint8 = 2
	ActionSetMessageFee       uint8 = 3
	ActionTransferFees        uint8 = 4
	ActionCoreRecoverChainID  uint8 = 5
)

// Governance action bytes shared by the token and NFT bridges.
const (
	ActionRegisterChain         uint8 = 1
	ActionBridgeContractUpgrade uint8 = 2
	ActionBridgeRecoverChainID  uint8 = 3
)

// Leading id byte of application payloads.
const (
	IDTransfer            uint8 = 1
	IDAttestMeta          uint8 = 2
	IDTransferWithPayload uint8 = 3
	IDNFTTransfer         uint8 = 1
)

// ModuleTagLength is the width of a module tag on the wire.
const ModuleTagLength = 32

// ModuleTag left pads the ASCII name with zeros to 32 bytes.
func ModuleTag(name string) ([ModuleTagLength]byte, error) {
	var tag [ModuleTagLength]byte
	if len(name) > ModuleTagLength {
		return tag, fmt.Errorf("module name longer than %d bytes: %q", ModuleTagLength, name)
	}
	copy(tag[ModuleTagLength-len(name):], name)

	return tag, nil
}

// Tag returns the wire tag of m.
func (m Module) Tag() ([ModuleTagLength]byte, error) {
	return ModuleTag(string(m))
}

// matches reports whether b starts with the tag of m.
func (m Module) matches(b []byte) bool {
	tag, err := m.Tag()
	if err != nil || len(b) < ModuleTagLength {
		return false
	}

	return bytes.Equal(b[:ModuleTagLength], tag[:])
}

// isBridge reports whether m is one of the bridge modules.
func (m Module) isBridge() bool {
	return m == TokenBridge || m == NFTBridge
}
