package solana

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/internal/utils/safecast"
	"github.com/wormhole-foundation/vaa/types"
)

// Instruction discriminants of the core bridge.
const (
	corePostVAA            uint8 = 2
	coreSetFees            uint8 = 3
	coreTransferFees       uint8 = 4
	coreUpgradeContract    uint8 = 5
	coreUpgradeGuardianSet uint8 = 6
	coreVerifySignatures   uint8 = 7
)

// Instruction discriminants of the token bridge.
const (
	tokenCompleteNative             uint8 = 2
	tokenCompleteWrapped            uint8 = 3
	tokenRegisterChain              uint8 = 6
	tokenCreateWrapped              uint8 = 7
	tokenUpgradeContract            uint8 = 8
	tokenCompleteNativeWithPayload  uint8 = 9
	tokenCompleteWrappedWithPayload uint8 = 10
)

// Instruction discriminants of the NFT bridge.
const (
	nftCompleteNative  uint8 = 3
	nftCompleteWrapped uint8 = 4
	nftRegisterChain   uint8 = 6
	nftUpgradeContract uint8 = 7
)

const (
	// MaxGuardians is the size of the signer table of a signature set.
	MaxGuardians = 19

	// SignaturesPerTransaction is how many signatures one verify_signatures transaction checks.
	SignaturesPerTransaction = 7

	secpOffsetsLength   = 11
	secpSignatureLength = common.AddressLength + types.SignatureBytesLength
)

// PostVAAData is the borsh encoded argument of post_vaa.
type PostVAAData struct {
	Version          uint8
	GuardianSetIndex uint32
	Timestamp        uint32
	Nonce            uint32
	EmitterChain     uint16
	EmitterAddress   [32]byte
	Sequence         uint64
	ConsistencyLevel uint8
	Payload          []byte
}

// VerifySignaturesData maps each guardian index to its position in the secp256k1 instruction, or
// -1 when the guardian did not sign in that instruction.
type VerifySignaturesData struct {
	Signers [MaxGuardians]int8
}

func instructionData(discriminant uint8, args any) ([]byte, error) {
	if args == nil {
		return []byte{discriminant}, nil
	}

	b, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal instruction %d: %w", discriminant, err)
	}

	return append([]byte{discriminant}, b...), nil
}

// NewPostVAAInstruction posts the VAA body after its signatures were verified into signatureSet.
func NewPostVAAInstruction(core, payer, signatureSet solana.PublicKey, v *vaa.VAA) (solana.Instruction, error) {
	ts, err := safecast.Int64ToUint32(v.Timestamp.Unix())
	if err != nil {
		return nil, err
	}

	data, err := instructionData(corePostVAA, &PostVAAData{
		Version:          v.Version,
		GuardianSetIndex: v.GuardianSetIndex,
		Timestamp:        ts,
		Nonce:            v.Nonce,
		EmitterChain:     uint16(v.EmitterChain),
		EmitterAddress:   v.EmitterAddress,
		Sequence:         v.Sequence,
		ConsistencyLevel: v.ConsistencyLevel,
		Payload:          v.Payload,
	})
	if err != nil {
		return nil, err
	}

	guardianSet, err := GuardianSetPDA(core, v.GuardianSetIndex)
	if err != nil {
		return nil, err
	}
	bridge, err := BridgePDA(core)
	if err != nil {
		return nil, err
	}
	posted, err := PostedVAAPDA(core, v)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(core, solana.AccountMetaSlice{
		solana.Meta(guardianSet),
		solana.Meta(bridge),
		solana.Meta(signatureSet),
		solana.Meta(posted).WRITE(),
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(solana.SysVarClockPubkey),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// NewVerifySignaturesInstructions returns the secp256k1 instruction checking sigs and the
// verify_signatures instruction recording them into signatureSet. The secp256k1 instruction must
// directly precede verify_signatures in the transaction. keys are the guardian addresses, in
// signature order.
func NewVerifySignaturesInstructions(
	core, payer, signatureSet solana.PublicKey, v *vaa.VAA, sigs []*types.Signature, keys []common.Address,
) ([]solana.Instruction, error) {
	if len(sigs) != len(keys) {
		return nil, fmt.Errorf("%d signatures but %d guardian keys", len(sigs), len(keys))
	}
	if len(sigs) > SignaturesPerTransaction {
		return nil, fmt.Errorf("at most %d signatures can be verified at once, got %d", SignaturesPerTransaction, len(sigs))
	}

	body, err := v.SigningBody()
	if err != nil {
		return nil, err
	}

	var args VerifySignaturesData
	for i := range args.Signers {
		args.Signers[i] = -1
	}
	for i, sig := range sigs {
		if int(sig.Index) >= MaxGuardians {
			return nil, fmt.Errorf("guardian index %d exceeds the signer table of %d", sig.Index, MaxGuardians)
		}
		args.Signers[sig.Index] = int8(i)
	}

	data, err := instructionData(coreVerifySignatures, &args)
	if err != nil {
		return nil, err
	}

	guardianSet, err := GuardianSetPDA(core, v.GuardianSetIndex)
	if err != nil {
		return nil, err
	}

	secp, err := newSecp256k1Instruction(crypto.Keccak256(body), sigs, keys)
	if err != nil {
		return nil, err
	}

	verify := solana.NewInstruction(core, solana.AccountMetaSlice{
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(guardianSet),
		solana.Meta(signatureSet).WRITE().SIGNER(),
		solana.Meta(solana.SysVarInstructionsPubkey),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(solana.SystemProgramID),
	}, data)

	return []solana.Instruction{secp, verify}, nil
}

// secpSignatureOffsets locates one signature, its guardian address and the message inside the
// secp256k1 instruction data.
type secpSignatureOffsets struct {
	SignatureOffset      uint16
	SignatureInstruction uint8
	AddressOffset        uint16
	AddressInstruction   uint8
	MessageOffset        uint16
	MessageSize          uint16
	MessageInstruction   uint8
}

// newSecp256k1Instruction lays out the offsets table, then address | signature | recovery id for
// every signature, then the shared message. The program hashes message with keccak256, so message
// is the single hash of the body. Offsets point into instruction 0, so the instruction must come
// first in its transaction.
func newSecp256k1Instruction(message []byte, sigs []*types.Signature, keys []common.Address) (solana.Instruction, error) {
	count, err := safecast.IntToUint8(len(sigs))
	if err != nil {
		return nil, err
	}

	dataStart := 1 + len(sigs)*secpOffsetsLength
	messageOffset, err := safecast.IntToUint16(dataStart + len(sigs)*secpSignatureLength)
	if err != nil {
		return nil, err
	}

	data := []byte{count}
	for i := range sigs {
		addrOffset, err := safecast.IntToUint16(dataStart + i*secpSignatureLength)
		if err != nil {
			return nil, err
		}

		b, err := bin.MarshalBorsh(&secpSignatureOffsets{
			SignatureOffset: addrOffset + common.AddressLength,
			AddressOffset:   addrOffset,
			MessageOffset:   messageOffset,
			MessageSize:     uint16(len(message)),
		})
		if err != nil {
			return nil, fmt.Errorf("unable to marshal signature offsets: %w", err)
		}
		data = append(data, b...)
	}

	for i, sig := range sigs {
		data = append(data, keys[i].Bytes()...)
		data = append(data, sig.ToBytes()...)
	}
	data = append(data, message...)

	return solana.NewInstruction(secp256k1ProgramID, solana.AccountMetaSlice{}, data), nil
}
