package fsa

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Symbol is a single input character. Epsilon is reserved for silent edges.
type Symbol rune

// Epsilon labels a transition that is taken without consuming input. It is
// not a valid character, so it never collides with an alphabet symbol.
const Epsilon Symbol = -1

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// Transition is a single (source, symbol, dest) triple.
type Transition struct {
	Source int
	Dest   int
	Symbol Symbol
}

type edge struct {
	symbol Symbol
	dest   int
}

func compareEdge(a, b edge) int {
	if c := cmp.Compare(a.symbol, b.symbol); c != 0 {
		return c
	}
	return cmp.Compare(a.dest, b.dest)
}

// Automaton Represents a nondeterministic automaton with optional epsilon transitions. States are
// nonnegative integers and are never created explicitly: a state exists once some call mentions it.
// Ids may be sparse. Transitions form a set, so adding the same triple twice has no effect.
//
// An Automaton is not safe for concurrent use. It must not be mutated while Determinize runs on it.
type Automaton struct {
	// Leaving transitions of each source state, sorted by symbol then dest.
	transitions    map[int][]edge
	numTransitions int

	initial    int
	hasInitial bool

	// Accept states below DefaultDenseLimit live in isAccept, larger ones in sparseAccept, so a
	// huge id never allocates a bit per smaller id.
	isAccept     *bitset.BitSet
	sparseAccept map[int]struct{}

	// Largest state id referenced by any call, -1 if none.
	maxState int
}

func NewAutomaton() *Automaton {
	return &Automaton{
		transitions:  make(map[int][]edge),
		isAccept:     bitset.New(0),
		sparseAccept: make(map[int]struct{}),
		maxState:     -1,
	}
}

func (a *Automaton) touch(state int) {
	if state > a.maxState {
		a.maxState = state
	}
}

// AddTransition Add a transition from source to dest labelled with symbol. Use Epsilon for a silent
// edge. Adding an existing transition is a no-op.
func (a *Automaton) AddTransition(source, dest int, symbol Symbol) {
	a.touch(source)
	a.touch(dest)

	e := edge{symbol: symbol, dest: dest}
	edges := a.transitions[source]
	i, found := slices.BinarySearchFunc(edges, e, compareEdge)
	if found {
		return
	}
	a.transitions[source] = slices.Insert(edges, i, e)
	a.numTransitions++
}

// SetInitialState Set the initial state, replacing any previous one.
func (a *Automaton) SetInitialState(state int) {
	a.touch(state)
	a.initial = state
	a.hasInitial = true
}

// AddFinalState Mark state as an accept state.
func (a *Automaton) AddFinalState(state int) {
	a.touch(state)
	if state < DefaultDenseLimit {
		a.isAccept.Set(uint(state))
		return
	}
	a.sparseAccept[state] = struct{}{}
}

// InitialState returns the initial state and whether one was set.
func (a *Automaton) InitialState() (int, bool) {
	return a.initial, a.hasInitial
}

// IsFinalState Returns true if this state is an accept state.
func (a *Automaton) IsFinalState(state int) bool {
	if state < DefaultDenseLimit {
		return a.isAccept.Test(uint(state))
	}
	_, ok := a.sparseAccept[state]
	return ok
}

// FinalStates returns the accept states in ascending order.
func (a *Automaton) FinalStates() []int {
	// Every sparse id is above every dense one.
	return append(bitsetToInts(a.isAccept), slices.Sorted(maps.Keys(a.sparseAccept))...)
}

// NumStates How many states this automaton has: one more than the largest id ever referenced,
// saturating at math.MaxInt.
func (a *Automaton) NumStates() int {
	if a.maxState == math.MaxInt {
		return math.MaxInt
	}
	return a.maxState + 1
}

// NumTransitions How many distinct transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return a.numTransitions
}

// GetTransitions returns every transition, ordered by source, symbol and dest.
func (a *Automaton) GetTransitions() []Transition {
	sources := make([]int, 0, len(a.transitions))
	for s := range a.transitions {
		sources = append(sources, s)
	}
	slices.Sort(sources)

	result := make([]Transition, 0, a.numTransitions)
	for _, s := range sources {
		for _, e := range a.transitions[s] {
			result = append(result, Transition{Source: s, Dest: e.dest, Symbol: e.symbol})
		}
	}
	return result
}

// labelled returns the edges leaving state with the given symbol. The result aliases internal storage.
func (a *Automaton) labelled(state int, symbol Symbol) []edge {
	edges := a.transitions[state]
	lo, _ := slices.BinarySearchFunc(edges, edge{symbol: symbol, dest: -1}, compareEdge)
	hi := lo
	for hi < len(edges) && edges[hi].symbol == symbol {
		hi++
	}
	return edges[lo:hi]
}

// Targets returns the sorted destinations of the transitions leaving state on symbol.
func (a *Automaton) Targets(state int, symbol Symbol) []int {
	edges := a.labelled(state, symbol)
	dests := make([]int, len(edges))
	for i, e := range edges {
		dests[i] = e.dest
	}
	return dests
}

// Move returns the sorted union of the destinations reached from any of states on symbol. No
// epsilon closure is applied.
func (a *Automaton) Move(states []int, symbol Symbol) []int {
	set := newStateSet(a.maxState, DefaultDenseLimit)
	for _, s := range states {
		a.move(s, symbol, set)
	}
	return set.GetArray()
}

func (a *Automaton) move(state int, symbol Symbol, into *StateSet) {
	for _, e := range a.labelled(state, symbol) {
		into.Add(e.dest)
	}
}

// symbols returns the non-epsilon symbols leaving any of states, ascending.
func (a *Automaton) symbols(states []int) []Symbol {
	var result []Symbol
	for _, s := range states {
		for _, e := range a.transitions[s] {
			if e.symbol != Epsilon {
				result = append(result, e.symbol)
			}
		}
	}
	slices.Sort(result)
	return slices.Compact(result)
}

// hasAccept reports whether set contains an accept state.
func (a *Automaton) hasAccept(set IntSet) bool {
	if bits := denseBits(set); bits != nil && len(a.sparseAccept) == 0 {
		return bits.IntersectionCardinality(a.isAccept) > 0
	}
	for _, s := range set.GetArray() {
		if a.IsFinalState(s) {
			return true
		}
	}
	return false
}

// IsDeterministic Returns true if this automaton has no epsilon transitions and, for every state,
// at most one transition per symbol.
func (a *Automaton) IsDeterministic() bool {
	for _, edges := range a.transitions {
		for i, e := range edges {
			if e.symbol == Epsilon {
				return false
			}
			if i > 0 && edges[i-1].symbol == e.symbol {
				return false
			}
		}
	}
	return true
}

func bitsetToInts(b *bitset.BitSet) []int {
	result := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		result = append(result, int(i))
	}
	return result
}
