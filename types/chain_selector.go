package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

var (
	// ErrChainFamilyNotFound is returned when the chain has no known family
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the chain family has no submitter
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")

	// ErrNotEVMChain is returned when an EVM chain id is requested for a non EVM chain
	ErrNotEVMChain = errors.New("not an EVM chain")
)

// familyCosmWasm and the other non selector families are only used to describe chains that the
// chain-selectors table does not cover.
const (
	familyCosmWasm = "cosmwasm"
	familyAlgorand = "algorand"
	familyNear     = "near"
	familyBtc      = "btc"
	familySui      = "sui"
)

// supportedFamilies lists the families a submitter exists for.
var supportedFamilies = []string{
	chainsel.FamilyEVM,
	chainsel.FamilySolana,
	chainsel.FamilyAptos,
}

var chains = map[ChainID]chainInfo{
	ChainIDSolana:          {name: "solana", family: chainsel.FamilySolana},
	ChainIDEthereum:        {name: "ethereum", family: chainsel.FamilyEVM, evmChainID: 1},
	ChainIDTerra:           {name: "terra", family: familyCosmWasm},
	ChainIDBSC:             {name: "bsc", family: chainsel.FamilyEVM, evmChainID: 56},
	ChainIDPolygon:         {name: "polygon", family: chainsel.FamilyEVM, evmChainID: 137},
	ChainIDAvalanche:       {name: "avalanche", family: chainsel.FamilyEVM, evmChainID: 43114},
	ChainIDOasis:           {name: "oasis", family: chainsel.FamilyEVM, evmChainID: 42262},
	ChainIDAlgorand:        {name: "algorand", family: familyAlgorand},
	ChainIDAurora:          {name: "aurora", family: chainsel.FamilyEVM, evmChainID: 1313161554},
	ChainIDFantom:          {name: "fantom", family: chainsel.FamilyEVM, evmChainID: 250},
	ChainIDKarura:          {name: "karura", family: chainsel.FamilyEVM, evmChainID: 686},
	ChainIDAcala:           {name: "acala", family: chainsel.FamilyEVM, evmChainID: 787},
	ChainIDKlaytn:          {name: "klaytn", family: chainsel.FamilyEVM, evmChainID: 8217},
	ChainIDCelo:            {name: "celo", family: chainsel.FamilyEVM, evmChainID: 42220},
	ChainIDNear:            {name: "near", family: familyNear},
	ChainIDMoonbeam:        {name: "moonbeam", family: chainsel.FamilyEVM, evmChainID: 1284},
	ChainIDNeon:            {name: "neon", family: chainsel.FamilyEVM, evmChainID: 245022934},
	ChainIDTerra2:          {name: "terra2", family: familyCosmWasm},
	ChainIDInjective:       {name: "injective", family: familyCosmWasm},
	ChainIDOsmosis:         {name: "osmosis", family: familyCosmWasm},
	ChainIDSui:             {name: "sui", family: familySui},
	ChainIDAptos:           {name: "aptos", family: chainsel.FamilyAptos},
	ChainIDArbitrum:        {name: "arbitrum", family: chainsel.FamilyEVM, evmChainID: 42161},
	ChainIDOptimism:        {name: "optimism", family: chainsel.FamilyEVM, evmChainID: 10},
	ChainIDGnosis:          {name: "gnosis", family: chainsel.FamilyEVM, evmChainID: 100},
	ChainIDPythNet:         {name: "pythnet", family: chainsel.FamilySolana},
	ChainIDXpla:            {name: "xpla", family: familyCosmWasm},
	ChainIDBtc:             {name: "btc", family: familyBtc},
	ChainIDBase:            {name: "base", family: chainsel.FamilyEVM, evmChainID: 8453},
	ChainIDSei:             {name: "sei", family: familyCosmWasm},
	ChainIDRootstock:       {name: "rootstock", family: chainsel.FamilyEVM, evmChainID: 30},
	ChainIDScroll:          {name: "scroll", family: chainsel.FamilyEVM, evmChainID: 534352},
	ChainIDMantle:          {name: "mantle", family: chainsel.FamilyEVM, evmChainID: 5000},
	ChainIDBlast:           {name: "blast", family: chainsel.FamilyEVM, evmChainID: 81457},
	ChainIDXLayer:          {name: "xlayer", family: chainsel.FamilyEVM, evmChainID: 196},
	ChainIDLinea:           {name: "linea", family: chainsel.FamilyEVM, evmChainID: 59144},
	ChainIDBerachain:       {name: "berachain", family: chainsel.FamilyEVM, evmChainID: 80094},
	ChainIDWormchain:       {name: "wormchain", family: familyCosmWasm},
	ChainIDSepolia:         {name: "sepolia", family: chainsel.FamilyEVM, evmChainID: 11155111},
	ChainIDArbitrumSepolia: {name: "arbitrum_sepolia", family: chainsel.FamilyEVM, evmChainID: 421614},
	ChainIDBaseSepolia:     {name: "base_sepolia", family: chainsel.FamilyEVM, evmChainID: 84532},
	ChainIDOptimismSepolia: {name: "optimism_sepolia", family: chainsel.FamilyEVM, evmChainID: 11155420},
	ChainIDHolesky:         {name: "holesky", family: chainsel.FamilyEVM, evmChainID: 17000},
}

// Family returns the chain-selectors family of the chain. Only the families that have a submitter
// are returned without error.
func (c ChainID) Family() (string, error) {
	info, ok := chains[c]
	if !ok {
		return "", fmt.Errorf("%w for chain %d", ErrChainFamilyNotFound, c)
	}

	if !slices.Contains(supportedFamilies, info.family) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, info.family)
	}

	return info.family, nil
}

// EVMChainID returns the native EVM chain id of an EVM chain.
func (c ChainID) EVMChainID() (uint64, error) {
	info, ok := chains[c]
	if !ok || info.evmChainID == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotEVMChain, c)
	}

	return info.evmChainID, nil
}

// EVMChainName looks up the chain-selectors name of a native EVM chain id. It is used to describe
// the EVM chain id carried by chain id recovery payloads.
func EVMChainName(evmChainID uint64) (string, error) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(evmChainID, 10), chainsel.FamilyEVM)
	if err != nil {
		return "", fmt.Errorf("%w for evm chain id %d", ErrChainFamilyNotFound, evmChainID)
	}

	return details.ChainName, nil
}
