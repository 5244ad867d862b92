// Package bindings holds the ABIs of the contract entry points that accept VAAs.
package bindings

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CoreABI is the governance surface of the core contract.
const CoreABI = `[
	{"type":"function","name":"submitContractUpgrade","stateMutability":"nonpayable","inputs":[{"name":"_vm","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitNewGuardianSet","stateMutability":"nonpayable","inputs":[{"name":"_vm","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitSetMessageFee","stateMutability":"nonpayable","inputs":[{"name":"_vm","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitTransferFees","stateMutability":"nonpayable","inputs":[{"name":"_vm","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitRecoverChainId","stateMutability":"nonpayable","inputs":[{"name":"_vm","type":"bytes"}],"outputs":[]}
]`

// TokenBridgeABI is the VAA surface of the token bridge.
const TokenBridgeABI = `[
	{"type":"function","name":"registerChain","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"upgrade","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitRecoverChainId","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"completeTransfer","stateMutability":"nonpayable","inputs":[{"name":"encodedVm","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"completeTransferWithPayload","stateMutability":"nonpayable","inputs":[{"name":"encodedVm","type":"bytes"}],"outputs":[{"name":"","type":"bytes"}]},
	{"type":"function","name":"createWrapped","stateMutability":"nonpayable","inputs":[{"name":"encodedVm","type":"bytes"}],"outputs":[{"name":"token","type":"address"}]}
]`

// NFTBridgeABI is the VAA surface of the NFT bridge.
const NFTBridgeABI = `[
	{"type":"function","name":"registerChain","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"upgrade","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"submitRecoverChainId","stateMutability":"nonpayable","inputs":[{"name":"encodedVM","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"completeTransfer","stateMutability":"nonpayable","inputs":[{"name":"encodeVm","type":"bytes"}],"outputs":[]}
]`

// NewBoundContract binds the contract at address with the given ABI.
func NewBoundContract(abiJSON string, address common.Address, backend bind.ContractBackend) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, err
	}

	return bind.NewBoundContract(address, parsed, backend, backend, backend), nil
}
