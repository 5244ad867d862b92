package solana

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/payload"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/types"
)

// Programs holds the wormhole program ids deployed on one Solana cluster. A zero key means the
// module is not deployed.
type Programs struct {
	Core        solana.PublicKey
	TokenBridge solana.PublicKey
	NFTBridge   solana.PublicKey
}

func (p Programs) program(m payload.Module) (solana.PublicKey, error) {
	var id solana.PublicKey
	switch m {
	case payload.Core:
		id = p.Core
	case payload.TokenBridge:
		id = p.TokenBridge
	case payload.NFTBridge:
		id = p.NFTBridge
	}
	if id.IsZero() {
		return solana.PublicKey{}, sdkerrors.NewMissingContractError(string(m))
	}

	return id, nil
}

// moduleInstructionBuilder builds the instruction that consumes a posted VAA.
type moduleInstructionBuilder struct {
	programs Programs
	payer    solana.PublicKey
	vaa      *vaa.VAA

	ix     solana.Instruction
	action string
}

var _ payload.Visitor = (*moduleInstructionBuilder)(nil)

// newModuleInstruction returns the instruction of the module that handles p, and a description of
// what it does.
func newModuleInstruction(programs Programs, payer solana.PublicKey, v *vaa.VAA, p payload.Payload) (solana.Instruction, string, error) {
	b := &moduleInstructionBuilder{programs: programs, payer: payer, vaa: v}
	if err := p.Accept(b); err != nil {
		return nil, "", err
	}

	return b.ix, b.action, nil
}

// pdas derives accounts in order and stops at the first failure.
type pdas struct {
	err error
}

func (d *pdas) get(fn func() (solana.PublicKey, error)) solana.PublicKey {
	if d.err != nil {
		return solana.PublicKey{}
	}
	key, err := fn()
	if err != nil {
		d.err = err
	}

	return key
}

// build sets the instruction of module m. accounts lays out the instruction accounts from the
// program id, the posted VAA and the claim of the VAA.
func (b *moduleInstructionBuilder) build(
	m payload.Module, discriminant uint8, action string, accounts func(program, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice,
) error {
	program, err := b.programs.program(m)
	if err != nil {
		return err
	}

	d := &pdas{}
	posted := d.get(func() (solana.PublicKey, error) { return PostedVAAPDA(b.programs.Core, b.vaa) })
	claim := d.get(func() (solana.PublicKey, error) { return ClaimPDA(program, b.vaa) })
	metas := accounts(program, posted, claim, d)
	if d.err != nil {
		return d.err
	}

	data, err := instructionData(discriminant, nil)
	if err != nil {
		return err
	}

	b.ix = solana.NewInstruction(program, metas, data)
	b.action = action

	return nil
}

func (b *moduleInstructionBuilder) VisitGuardianSetUpgrade(p *payload.GuardianSetUpgrade) error {
	if p.NewIndex == 0 {
		return errors.New("guardian set 0 cannot be the target of an upgrade")
	}

	return b.build(payload.Core, coreUpgradeGuardianSet, "Upgrading guardian set",
		func(core, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			bridge := d.get(func() (solana.PublicKey, error) { return BridgePDA(core) })
			oldSet := d.get(func() (solana.PublicKey, error) { return GuardianSetPDA(core, p.NewIndex-1) })
			newSet := d.get(func() (solana.PublicKey, error) { return GuardianSetPDA(core, p.NewIndex) })

			return solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(bridge).WRITE(),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(oldSet).WRITE(),
				solana.Meta(newSet).WRITE(),
				solana.Meta(solana.SystemProgramID),
			}
		})
}

func (b *moduleInstructionBuilder) VisitContractUpgrade(p *payload.ContractUpgrade) error {
	discriminant := coreUpgradeContract
	switch p.Module() {
	case payload.TokenBridge:
		discriminant = tokenUpgradeContract
	case payload.NFTBridge:
		discriminant = nftUpgradeContract
	}

	return b.build(p.Module(), discriminant, "Upgrading contract",
		func(program, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			metas := solana.AccountMetaSlice{solana.Meta(b.payer).WRITE().SIGNER()}
			if p.Module() == payload.Core {
				bridge := d.get(func() (solana.PublicKey, error) { return BridgePDA(program) })
				metas = append(metas, solana.Meta(bridge).WRITE())
			}
			authority := d.get(func() (solana.PublicKey, error) { return UpgradeAuthorityPDA(program) })
			programData := d.get(func() (solana.PublicKey, error) { return ProgramDataPDA(program) })

			return append(metas,
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(authority),
				solana.Meta(b.payer).WRITE(),
				solana.Meta(publicKey(p.NewContract)).WRITE(),
				solana.Meta(programData).WRITE(),
				solana.Meta(program).WRITE(),
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SysVarClockPubkey),
				solana.Meta(bpfLoaderUpgradeableID),
				solana.Meta(solana.SystemProgramID),
			)
		})
}

func (b *moduleInstructionBuilder) VisitRegisterChain(p *payload.RegisterChain) error {
	discriminant := tokenRegisterChain
	if p.Module() == payload.NFTBridge {
		discriminant = nftRegisterChain
	}

	return b.build(p.Module(), discriminant, "Registering chain "+p.EmitterChain.String(),
		func(bridge, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			config := d.get(func() (solana.PublicKey, error) { return ConfigPDA(bridge) })
			endpoint := d.get(func() (solana.PublicKey, error) { return EndpointPDA(bridge, p.EmitterChain, p.EmitterAddress) })

			return solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(config),
				solana.Meta(endpoint).WRITE(),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SystemProgramID),
				solana.Meta(b.programs.Core),
			}
		})
}

func (b *moduleInstructionBuilder) VisitRecoverChainID(p *payload.RecoverChainID) error {
	return sdkerrors.NewUnsupportedPayloadError(chainsel.FamilySolana, string(p.Module()), p.Type())
}

func (b *moduleInstructionBuilder) VisitSetMessageFee(*payload.SetMessageFee) error {
	return b.build(payload.Core, coreSetFees, "Setting message fee",
		func(core, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			bridge := d.get(func() (solana.PublicKey, error) { return BridgePDA(core) })

			return solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(bridge).WRITE(),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(solana.SystemProgramID),
			}
		})
}

func (b *moduleInstructionBuilder) VisitTransferFees(p *payload.TransferFees) error {
	return b.build(payload.Core, coreTransferFees, "Transferring fees",
		func(core, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			bridge := d.get(func() (solana.PublicKey, error) { return BridgePDA(core) })
			collector := d.get(func() (solana.PublicKey, error) { return FeeCollectorPDA(core) })

			return solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(bridge),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(collector).WRITE(),
				solana.Meta(publicKey(p.Recipient)).WRITE(),
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SystemProgramID),
			}
		})
}

func (b *moduleInstructionBuilder) VisitAttestMeta(p *payload.AttestMeta) error {
	return b.build(payload.TokenBridge, tokenCreateWrapped, "Creating wrapped asset "+p.Symbol,
		func(bridge, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			config := d.get(func() (solana.PublicKey, error) { return ConfigPDA(bridge) })
			endpoint := d.get(func() (solana.PublicKey, error) {
				return EndpointPDA(bridge, b.vaa.EmitterChain, b.vaa.EmitterAddress)
			})
			mint := d.get(func() (solana.PublicKey, error) { return WrappedMintPDA(bridge, p.TokenChain, p.TokenAddress) })
			meta := d.get(func() (solana.PublicKey, error) { return WrappedMetaPDA(bridge, mint) })
			mintSigner := d.get(func() (solana.PublicKey, error) { return MintSignerPDA(bridge) })

			return solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(config),
				solana.Meta(endpoint),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(mint).WRITE(),
				solana.Meta(meta).WRITE(),
				solana.Meta(mintSigner),
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SystemProgramID),
				solana.Meta(solana.TokenProgramID),
				solana.Meta(b.programs.Core),
			}
		})
}

func (b *moduleInstructionBuilder) VisitTransfer(p *payload.Transfer) error {
	return b.completeTransfer(p.TokenChain, p.TokenAddress, p.To, false)
}

func (b *moduleInstructionBuilder) VisitTransferWithPayload(p *payload.TransferWithPayload) error {
	return b.completeTransfer(p.TokenChain, p.TokenAddress, p.To, true)
}

// completeTransfer releases native tokens from custody, or mints wrapped tokens, to the token
// account to. Transfers with payload are redeemed by the payer.
func (b *moduleInstructionBuilder) completeTransfer(tokenChain types.ChainID, token, to types.Address, withPayload bool) error {
	native := tokenChain == types.ChainIDSolana

	var discriminant uint8
	switch {
	case native && withPayload:
		discriminant = tokenCompleteNativeWithPayload
	case native:
		discriminant = tokenCompleteNative
	case withPayload:
		discriminant = tokenCompleteWrappedWithPayload
	default:
		discriminant = tokenCompleteWrapped
	}

	return b.build(payload.TokenBridge, discriminant, "Completing transfer",
		func(bridge, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			config := d.get(func() (solana.PublicKey, error) { return ConfigPDA(bridge) })
			endpoint := d.get(func() (solana.PublicKey, error) {
				return EndpointPDA(bridge, b.vaa.EmitterChain, b.vaa.EmitterAddress)
			})

			metas := solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(config),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(endpoint),
				solana.Meta(publicKey(to)).WRITE(),
			}
			if withPayload {
				metas = append(metas, solana.Meta(b.payer).SIGNER())
			}
			// Fees go to the recipient as well.
			metas = append(metas, solana.Meta(publicKey(to)).WRITE())

			if native {
				mint := publicKey(token)
				custody := d.get(func() (solana.PublicKey, error) { return CustodyPDA(bridge, mint) })
				custodySigner := d.get(func() (solana.PublicKey, error) { return CustodySignerPDA(bridge) })
				metas = append(metas,
					solana.Meta(custody).WRITE(),
					solana.Meta(mint),
					solana.Meta(custodySigner),
				)
			} else {
				mint := d.get(func() (solana.PublicKey, error) { return WrappedMintPDA(bridge, tokenChain, token) })
				meta := d.get(func() (solana.PublicKey, error) { return WrappedMetaPDA(bridge, mint) })
				mintSigner := d.get(func() (solana.PublicKey, error) { return MintSignerPDA(bridge) })
				metas = append(metas,
					solana.Meta(mint).WRITE(),
					solana.Meta(meta),
					solana.Meta(mintSigner),
				)
			}

			return append(metas,
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SystemProgramID),
				solana.Meta(solana.TokenProgramID),
				solana.Meta(b.programs.Core),
			)
		})
}

func (b *moduleInstructionBuilder) VisitNFTTransfer(p *payload.NFTTransfer) error {
	native := p.TokenChain == types.ChainIDSolana
	discriminant := nftCompleteWrapped
	if native {
		discriminant = nftCompleteNative
	}

	return b.build(payload.NFTBridge, discriminant, "Completing NFT transfer",
		func(bridge, posted, claim solana.PublicKey, d *pdas) solana.AccountMetaSlice {
			config := d.get(func() (solana.PublicKey, error) { return ConfigPDA(bridge) })
			endpoint := d.get(func() (solana.PublicKey, error) {
				return EndpointPDA(bridge, b.vaa.EmitterChain, b.vaa.EmitterAddress)
			})

			metas := solana.AccountMetaSlice{
				solana.Meta(b.payer).WRITE().SIGNER(),
				solana.Meta(config),
				solana.Meta(posted),
				solana.Meta(claim).WRITE(),
				solana.Meta(endpoint),
				solana.Meta(publicKey(p.To)).WRITE(),
			}

			if native {
				mint := publicKey(p.TokenAddress)
				custody := d.get(func() (solana.PublicKey, error) { return CustodyPDA(bridge, mint) })
				custodySigner := d.get(func() (solana.PublicKey, error) { return CustodySignerPDA(bridge) })
				metas = append(metas,
					solana.Meta(custody).WRITE(),
					solana.Meta(mint),
					solana.Meta(custodySigner),
				)
			} else {
				tokenID := [32]byte{}
				if p.TokenID != nil {
					tokenID = p.TokenID.Bytes32()
				}
				mint := d.get(func() (solana.PublicKey, error) {
					return WrappedMintPDA(bridge, p.TokenChain, p.TokenAddress, tokenID[:])
				})
				meta := d.get(func() (solana.PublicKey, error) { return WrappedMetaPDA(bridge, mint) })
				mintSigner := d.get(func() (solana.PublicKey, error) { return MintSignerPDA(bridge) })
				metas = append(metas,
					solana.Meta(mint).WRITE(),
					solana.Meta(meta).WRITE(),
					solana.Meta(mintSigner),
				)
			}

			return append(metas,
				solana.Meta(solana.SysVarRentPubkey),
				solana.Meta(solana.SystemProgramID),
				solana.Meta(solana.TokenProgramID),
				solana.Meta(b.programs.Core),
			)
		})
}

func (b *moduleInstructionBuilder) VisitUnrecognized(p *payload.Unrecognized) error {
	return sdkerrors.NewUnsupportedPayloadError(chainsel.FamilySolana, "", p.Type())
}
