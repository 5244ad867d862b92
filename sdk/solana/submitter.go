package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	sdkerrors "github.com/wormhole-foundation/vaa/sdk/errors"
	"github.com/wormhole-foundation/vaa/types"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultPollAttempts = 60
)

// RPCClient is the part of the Solana rpc client used to submit VAAs. *rpc.Client implements it.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

var _ RPCClient = (*rpc.Client)(nil)

var _ sdk.Submitter = (*Submitter)(nil)

// Submitter is a Submitter implementation for Solana. It verifies the guardian signatures into a
// signature set, posts the VAA to the core bridge and calls the module that consumes it.
type Submitter struct {
	client   RPCClient
	auth     solana.PrivateKey
	programs Programs

	pollInterval    time.Duration
	pollAttempts    int
	newSignatureSet func() (solana.PrivateKey, error)
}

// NewSubmitter creates a new Submitter for Solana. auth pays for and signs every transaction.
func NewSubmitter(client RPCClient, auth solana.PrivateKey, programs Programs) *Submitter {
	return &Submitter{
		client:          client,
		auth:            auth,
		programs:        programs,
		pollInterval:    defaultPollInterval,
		pollAttempts:    defaultPollAttempts,
		newSignatureSet: solana.NewRandomPrivateKey,
	}
}

func (s *Submitter) Submit(
	ctx context.Context, chain types.ChainID, p payload.Payload, raw []byte,
) (types.TransactionResult, error) {
	family, err := chain.Family()
	if err != nil {
		return types.TransactionResult{}, err
	}
	if family != chainsel.FamilySolana {
		return types.TransactionResult{}, sdkerrors.NewInvalidChainIDError(chain)
	}
	if s.programs.Core.IsZero() {
		return types.TransactionResult{}, sdkerrors.NewMissingContractError(string(payload.Core))
	}

	v, err := vaa.Parse(raw)
	if err != nil {
		return types.TransactionResult{}, err
	}

	payer := s.auth.PublicKey()
	moduleIx, action, err := newModuleInstruction(s.programs, payer, v, p)
	if err != nil {
		return types.TransactionResult{}, err
	}

	keys, err := v.RecoverSigners()
	if err != nil {
		return types.TransactionResult{}, err
	}

	signatureSet, err := s.newSignatureSet()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("unable to create signature set: %w", err)
	}

	log := sdk.LoggerFrom(ctx)
	for _, idx := range chunkIndexes(len(v.Signatures), SignaturesPerTransaction) {
		ixs, err := NewVerifySignaturesInstructions(s.programs.Core, payer, signatureSet.PublicKey(), v,
			v.Signatures[idx[0]:idx[1]], keys[idx[0]:idx[1]])
		if err != nil {
			return types.TransactionResult{}, err
		}

		signature, _, err := s.sendAndConfirm(ctx, ixs, signatureSet)
		if err != nil {
			return types.TransactionResult{}, fmt.Errorf("unable to verify signatures: %w", err)
		}
		log.Debugf("Verified signatures %d to %d of %s in %s", idx[0], idx[1]-1, v.MessageID(), signature)
	}

	postIx, err := NewPostVAAInstruction(s.programs.Core, payer, signatureSet.PublicKey(), v)
	if err != nil {
		return types.TransactionResult{}, err
	}

	log.Infof("%s on %s: posting VAA %s", action, chain, v.MessageID())

	signature, tx, err := s.sendAndConfirm(ctx, []solana.Instruction{postIx, moduleIx})
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("unable to post VAA: %w", err)
	}

	return types.NewTransactionResult(signature.String(), chainsel.FamilySolana, tx), nil
}

// sendAndConfirm signs the instructions with the payer and extra signers, sends them as one
// transaction and waits until it is confirmed.
func (s *Submitter) sendAndConfirm(
	ctx context.Context, instructions []solana.Instruction, extraSigners ...solana.PrivateKey,
) (solana.Signature, *solana.Transaction, error) {
	blockhash, err := s.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("unable to get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash.Value.Blockhash, solana.TransactionPayer(s.auth.PublicKey()))
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("unable to create transaction: %w", err)
	}

	signers := append([]solana.PrivateKey{s.auth}, extraSigners...)
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}

		return nil
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("unable to sign transaction: %w", err)
	}

	signature, err := s.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("unable to send transaction: %w", err)
	}

	if err := s.waitForConfirmation(ctx, signature); err != nil {
		return solana.Signature{}, nil, err
	}

	return signature, tx, nil
}

func (s *Submitter) waitForConfirmation(ctx context.Context, signature solana.Signature) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for range s.pollAttempts {
		res, err := s.client.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			return fmt.Errorf("unable to get signature status: %w", err)
		}

		if len(res.Value) == 1 && res.Value[0] != nil {
			status := res.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed: %v", signature, status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return errors.New("transaction " + signature.String() + " was not confirmed in time")
}

// chunkIndexes splits numItems into [start, end) ranges of at most chunkSize items.
func chunkIndexes(numItems int, chunkSize int) [][2]int {
	indexes := make([][2]int, 0)

	for i := 0; i < numItems; i += chunkSize {
		end := i + chunkSize
		if end > numItems {
			end = numItems
		}
		indexes = append(indexes, [2]int{i, end})
	}

	return indexes
}
