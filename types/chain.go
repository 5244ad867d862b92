package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ChainID is the numeric identifier of a chain on the wire. It is independent of the native chain
// id used by the chain itself (e.g. Ethereum is 2 here, and 1 as an EVM chain id).
type ChainID uint16

const (
	// ChainIDUnset is the zero value. Governance payloads use it to mean "every chain".
	ChainIDUnset           ChainID = 0
	ChainIDSolana          ChainID = 1
	ChainIDEthereum        ChainID = 2
	ChainIDTerra           ChainID = 3
	ChainIDBSC             ChainID = 4
	ChainIDPolygon         ChainID = 5
	ChainIDAvalanche       ChainID = 6
	ChainIDOasis           ChainID = 7
	ChainIDAlgorand        ChainID = 8
	ChainIDAurora          ChainID = 9
	ChainIDFantom          ChainID = 10
	ChainIDKarura          ChainID = 11
	ChainIDAcala           ChainID = 12
	ChainIDKlaytn          ChainID = 13
	ChainIDCelo            ChainID = 14
	ChainIDNear            ChainID = 15
	ChainIDMoonbeam        ChainID = 16
	ChainIDNeon            ChainID = 17
	ChainIDTerra2          ChainID = 18
	ChainIDInjective       ChainID = 19
	ChainIDOsmosis         ChainID = 20
	ChainIDSui             ChainID = 21
	ChainIDAptos           ChainID = 22
	ChainIDArbitrum        ChainID = 23
	ChainIDOptimism        ChainID = 24
	ChainIDGnosis          ChainID = 25
	ChainIDPythNet         ChainID = 26
	ChainIDXpla            ChainID = 28
	ChainIDBtc             ChainID = 29
	ChainIDBase            ChainID = 30
	ChainIDSei             ChainID = 32
	ChainIDRootstock       ChainID = 33
	ChainIDScroll          ChainID = 34
	ChainIDMantle          ChainID = 35
	ChainIDBlast           ChainID = 36
	ChainIDXLayer          ChainID = 37
	ChainIDLinea           ChainID = 38
	ChainIDBerachain       ChainID = 39
	ChainIDWormchain       ChainID = 3104
	ChainIDSepolia         ChainID = 10002
	ChainIDArbitrumSepolia ChainID = 10003
	ChainIDBaseSepolia     ChainID = 10004
	ChainIDOptimismSepolia ChainID = 10005
	ChainIDHolesky         ChainID = 10006
)

// ErrUnknownChain is returned when a chain name or number does not map to a known ChainID.
var ErrUnknownChain = errors.New("unknown chain")

// chainInfo describes a known chain. evmChainID is zero for non EVM chains.
type chainInfo struct {
	name       string
	family     string
	evmChainID uint64
}

// ChainIDs returns every known chain id, in ascending order.
func ChainIDs() []ChainID {
	ids := make([]ChainID, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// String returns the lower case chain name, or the decimal number for unknown chains.
func (c ChainID) String() string {
	if info, ok := chains[c]; ok {
		return info.name
	}

	return strconv.FormatUint(uint64(c), 10)
}

// IsKnown reports whether c is in the chain table.
func (c ChainID) IsKnown() bool {
	_, ok := chains[c]
	return ok
}

// ChainIDFromString parses a chain name (case insensitive) or a decimal chain number.
func ChainIDFromString(s string) (ChainID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, info := range chains {
		if info.name == s {
			return id, nil
		}
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return ChainIDUnset, fmt.Errorf("%w: %q", ErrUnknownChain, s)
	}

	return ChainID(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c ChainID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ChainID) UnmarshalText(text []byte) error {
	id, err := ChainIDFromString(string(text))
	if err != nil {
		return err
	}
	*c = id

	return nil
}

// MarshalJSON renders the chain as its name.
func (c ChainID) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either a chain name or a number.
func (c *ChainID) UnmarshalJSON(data []byte) error {
	var n uint16
	if err := json.Unmarshal(data, &n); err == nil {
		*c = ChainID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid chain id: %w", err)
	}

	return c.UnmarshalText([]byte(s))
}
