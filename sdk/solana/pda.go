package solana

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/types"
)

var (
	// secp256k1ProgramID is the native program that checks Ethereum style signatures.
	secp256k1ProgramID = solana.MustPublicKeyFromBase58("KeccakSecp256k11111111111111111111111111111")

	// bpfLoaderUpgradeableID owns upgradeable programs and their program data accounts.
	bpfLoaderUpgradeableID = solana.MustPublicKeyFromBase58("BPFLoaderUpgradeab1e11111111111111111111111")
)

func findPDA(programID solana.PublicKey, seeds ...[]byte) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("unable to find %s pda: %w", seeds[0], err)
	}

	return addr, nil
}

func u16BE(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

func u32BE(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func u64BE(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

// publicKey reinterprets a wormhole address as a Solana account.
func publicKey(addr types.Address) solana.PublicKey {
	return solana.PublicKeyFromBytes(addr.Bytes())
}

// BridgePDA is the core bridge config account.
func BridgePDA(core solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(core, []byte("Bridge"))
}

// GuardianSetPDA holds the keys of guardian set index.
func GuardianSetPDA(core solana.PublicKey, index uint32) (solana.PublicKey, error) {
	return findPDA(core, []byte("GuardianSet"), u32BE(index))
}

// FeeCollectorPDA receives the message fees of the core bridge.
func FeeCollectorPDA(core solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(core, []byte("fee_collector"))
}

// PostedVAAPDA is the account a VAA is posted to. It is keyed by the single keccak256 hash of the
// signing body.
func PostedVAAPDA(core solana.PublicKey, v *vaa.VAA) (solana.PublicKey, error) {
	body, err := v.SigningBody()
	if err != nil {
		return solana.PublicKey{}, err
	}

	return findPDA(core, []byte("PostedVAA"), crypto.Keccak256(body))
}

// ClaimPDA marks a VAA as consumed by program.
func ClaimPDA(program solana.PublicKey, v *vaa.VAA) (solana.PublicKey, error) {
	return findPDA(program, v.EmitterAddress.Bytes(), u16BE(uint16(v.EmitterChain)), u64BE(v.Sequence))
}

// UpgradeAuthorityPDA is the upgrade authority of a wormhole program.
func UpgradeAuthorityPDA(program solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(program, []byte("upgrade"))
}

// ProgramDataPDA is the program data account of an upgradeable program.
func ProgramDataPDA(program solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bpfLoaderUpgradeableID, program.Bytes())
}

// ConfigPDA is the config account of a bridge program.
func ConfigPDA(bridge solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bridge, []byte("config"))
}

// EndpointPDA is the registration of the bridge of chain at emitter.
func EndpointPDA(bridge solana.PublicKey, chain types.ChainID, emitter types.Address) (solana.PublicKey, error) {
	return findPDA(bridge, u16BE(uint16(chain)), emitter.Bytes())
}

// CustodyPDA holds the locked native tokens of mint.
func CustodyPDA(bridge, mint solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bridge, mint.Bytes())
}

// CustodySignerPDA is the authority of every custody account.
func CustodySignerPDA(bridge solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bridge, []byte("custody_signer"))
}

// WrappedMintPDA is the mint of the wrapped version of a foreign token. NFT mints also include the
// token id.
func WrappedMintPDA(bridge solana.PublicKey, chain types.ChainID, token types.Address, extra ...[]byte) (solana.PublicKey, error) {
	seeds := append([][]byte{[]byte("wrapped"), u16BE(uint16(chain)), token.Bytes()}, extra...)
	return findPDA(bridge, seeds...)
}

// WrappedMetaPDA records the origin of a wrapped mint.
func WrappedMetaPDA(bridge, mint solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bridge, []byte("meta"), mint.Bytes())
}

// MintSignerPDA is the mint authority of wrapped mints.
func MintSignerPDA(bridge solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(bridge, []byte("mint_signer"))
}
