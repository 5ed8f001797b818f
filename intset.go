package fsa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IntSet is a set of state ids usable as a HashMap key. Implementations with equal contents hash
// and compare equal, whatever their representation.
type IntSet interface {
	Hashable

	// GetArray returns the ids in ascending order.
	GetArray() []int

	Size() int
}

// denseBits returns the bitset backing set, or nil for sparse sets.
func denseBits(set IntSet) *bitset.BitSet {
	switch s := set.(type) {
	case *StateSet:
		return s.bits
	case *FrozenIntSet:
		return s.bits
	}
	return nil
}

func sameInts(a, b IntSet) bool {
	if a.Hash() != b.Hash() || a.Size() != b.Size() {
		return false
	}
	ab, bb := denseBits(a), denseBits(b)
	if ab != nil && bb != nil && ab.Len() == bb.Len() {
		return ab.Equal(bb)
	}
	return slices.Equal(a.GetArray(), b.GetArray())
}

// setHash is the order independent hash shared by every IntSet: the size plus the mixed ids.
func setHash(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}
