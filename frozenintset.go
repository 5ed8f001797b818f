package fsa

import "github.com/bits-and-blooms/bitset"

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is the canonical form of a subset of NFA states: sorted, duplicate free, and
// optionally mirrored by a bitset. It remembers the DFA state it was assigned.
type FrozenIntSet struct {
	values   []int
	bits     *bitset.BitSet
	state    int
	hashCode uint64
}

// NewFrozenIntSet builds a sparse canonical set. values must be sorted and duplicate free.
func NewFrozenIntSet(values []int, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: setHash(values)}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals compares contents only; the assigned state is ignored.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok || is == nil {
		return false
	}
	return sameInts(f, is)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State returns the DFA state this subset was assigned.
func (f *FrozenIntSet) State() int {
	return f.state
}
