package types //nolint:revive

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidGuardianSet = errors.New("invalid guardian set")

// GuardianSet is the indexed list of guardian addresses. The position of a key in Keys is the
// signature index a guardian signs with.
type GuardianSet struct {
	Index uint32           `json:"index"`
	Keys  []common.Address `json:"keys"`
}

// NewGuardianSet returns a new guardian set and ensures it is valid.
func NewGuardianSet(index uint32, keys []common.Address) (GuardianSet, error) {
	gs := GuardianSet{Index: index, Keys: keys}
	if err := gs.Validate(); err != nil {
		return GuardianSet{}, err
	}

	return gs, nil
}

// Validate checks that the set is not empty, fits a u8 length prefix and has no duplicate keys.
func (g *GuardianSet) Validate() error {
	if len(g.Keys) == 0 {
		return fmt.Errorf("%w: guardian set must have at least one key", ErrInvalidGuardianSet)
	}

	if len(g.Keys) > math.MaxUint8 {
		return fmt.Errorf("%w: guardian set has %d keys, max number is 255", ErrInvalidGuardianSet, len(g.Keys))
	}

	seen := make(map[common.Address]struct{}, len(g.Keys))
	for _, key := range g.Keys {
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidGuardianSet, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Quorum returns the number of signatures required for a VAA to be accepted: more than two thirds
// of the guardians.
func (g *GuardianSet) Quorum() int {
	return CalculateQuorum(len(g.Keys))
}

// CalculateQuorum returns the quorum for a guardian set of the given size.
func CalculateQuorum(numGuardians int) int {
	return ((numGuardians*10/3)*2)/10 + 1
}

// KeyIndex returns the position of addr in the set.
func (g *GuardianSet) KeyIndex(addr common.Address) (int, bool) {
	i := slices.Index(g.Keys, addr)
	return i, i >= 0
}

// Equals checks if two guardian sets have the same index and the same keys in the same order.
func (g *GuardianSet) Equals(other *GuardianSet) bool {
	return g.Index == other.Index && slices.Equal(g.Keys, other.Keys)
}

// HasQuorum checks that the recovered signers are all members of the set and that enough distinct
// members signed.
func (g *GuardianSet) HasQuorum(recoveredSigners []common.Address) (bool, error) {
	distinct := make(map[common.Address]struct{}, len(recoveredSigners))
	for _, signer := range recoveredSigners {
		if !slices.Contains(g.Keys, signer) {
			return false, fmt.Errorf("recovered signer %s is not a member of guardian set %d", signer, g.Index)
		}
		distinct[signer] = struct{}{}
	}

	return len(distinct) >= g.Quorum(), nil
}
