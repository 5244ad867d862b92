package vaa

import (
	"context"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"golang.org/x/crypto/sha3"

	"github.com/wormhole-foundation/vaa"
	"github.com/wormhole-foundation/vaa/sdk"
	"github.com/wormhole-foundation/vaa/types"
)

const (
	envGuardianSecrets = "GUARDIAN_SECRETS"
	envPrivateKey      = "PRIVATE_KEY"
	envSolanaKey       = "SOLANA_KEY"
	envAptosKey        = "APTOS_KEY"
)

// loadEnv loads the .env file of the working directory, if there is one.
func loadEnv() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func requireEnv(key string) (string, error) {
	if err := loadEnv(); err != nil {
		return "", err
	}

	value := os.Getenv(key)
	if value == "" {
		return "", errors.New(key + " not found in environment or .env file")
	}

	return value, nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	pk, err := requireEnv(envPrivateKey)
	if err != nil {
		return nil, err
	}

	return crypto.HexToECDSA(trimHexPrefix(pk))
}

func trimHexPrefix(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}

// loadGuardianSigners parses a comma separated list of guardian keys, falling back to
// GUARDIAN_SECRETS. The n-th key signs as guardian n.
func loadGuardianSigners(secrets string) ([]vaa.Signer, error) {
	if secrets == "" {
		var err error
		if secrets, err = requireEnv(envGuardianSecrets); err != nil {
			return nil, err
		}
	}

	var signers []vaa.Signer
	for i, secret := range strings.Split(secrets, ",") {
		signer, err := vaa.NewPrivateKeySignerFromHex(strings.TrimSpace(secret))
		if err != nil {
			return nil, fmt.Errorf("invalid guardian secret %d: %w", i, err)
		}
		signers = append(signers, signer)
	}

	return signers, nil
}

// decodeVAAArg accepts a VAA in hex, with or without 0x prefix, or in base64.
func decodeVAAArg(arg string) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	if b, err := hex.DecodeString(trimHexPrefix(arg)); err == nil && len(b) > 0 {
		return b, nil
	}

	b, err := base64.StdEncoding.DecodeString(arg)
	if err != nil || len(b) == 0 {
		return nil, errors.New("couldn't parse VAA as hex or base64")
	}

	return b, nil
}

// parseAddress reads an address in the native format of chain and returns its 32 byte form.
// Aptos accepts either an account address or a fully qualified type, which is hashed.
func parseAddress(chain types.ChainID, address string) (types.Address, error) {
	if !chain.IsKnown() {
		return types.Address{}, fmt.Errorf("%w: %d", types.ErrUnknownChain, uint16(chain))
	}

	// Chains without a submitter take hex addresses.
	family, _ := chain.Family()
	switch family {
	case chainsel.FamilySolana:
		key, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return types.Address{}, fmt.Errorf("invalid solana address %q: %w", address, err)
		}

		return types.Address(key), nil
	case chainsel.FamilyAptos:
		if strings.Contains(address, "::") {
			return types.Address(sha3.Sum256([]byte(address))), nil
		}
	}

	return types.StringToAddress(address)
}

// confirmEVM polls for the receipt of txHash until it is mined.
func confirmEVM(ctx context.Context, b bind.DeployBackend, txHash string) (*gethtypes.Receipt, error) {
	queryTicker := time.NewTicker(time.Second)
	defer queryTicker.Stop()

	logger := sdk.LoggerFrom(ctx)
	for {
		receipt, err := b.TransactionReceipt(ctx, common.HexToHash(txHash))
		if err == nil {
			return receipt, nil
		}

		if errors.Is(err, ethereum.NotFound) {
			logger.Debugf("Transaction %s not yet mined", txHash)
		} else {
			logger.Debugf("Receipt retrieval of %s failed: %v", txHash, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
