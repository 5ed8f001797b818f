package fsa

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &StateSet{}

// DefaultDenseLimit is the largest state universe for which state sets are backed by a bitset.
// Larger universes use a map so sparse ids do not allocate one bit per possible id.
const DefaultDenseLimit = 4096

// StateSet is a growable set of states, used while computing closures and moves.
type StateSet struct {
	bits     *bitset.BitSet
	inner    map[int]struct{}
	size     int
	hashCode uint64
}

// newStateSet returns a set for states up to maxState, bitset-backed when maxState is below
// denseLimit.
func newStateSet(maxState, denseLimit int) *StateSet {
	if maxState < denseLimit {
		return &StateSet{bits: bitset.New(uint(maxState + 1))}
	}
	return &StateSet{inner: make(map[int]struct{})}
}

// Add inserts state and reports whether it was not already present.
func (s *StateSet) Add(state int) bool {
	if s.bits != nil {
		if s.bits.Test(uint(state)) {
			return false
		}
		s.bits.Set(uint(state))
	} else {
		if _, ok := s.inner[state]; ok {
			return false
		}
		s.inner[state] = struct{}{}
	}
	s.size++
	s.hashCode += 1 + uint64(mix(state))
	return true
}

func (s *StateSet) Hash() uint64 {
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return sameInts(s, is)
}

func (s *StateSet) GetArray() []int {
	if s.bits != nil {
		return bitsetToInts(s.bits)
	}
	return slices.Sorted(maps.Keys(s.inner))
}

func (s *StateSet) Size() int {
	return s.size
}

// Freeze returns an immutable copy of the set tagged with a DFA state id.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	if s.bits == nil {
		return NewFrozenIntSet(s.GetArray(), state)
	}
	return &FrozenIntSet{
		values:   s.GetArray(),
		bits:     s.bits.Clone(),
		state:    state,
		hashCode: s.hashCode,
	}
}
