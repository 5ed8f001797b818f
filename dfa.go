package fsa

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Edge is a DFA transition to To on Symbol.
type Edge struct {
	To     int
	Symbol Symbol
}

// DFA is the result of Determinize. States are 0..NumStates()-1, state 0 is initial, and each
// state has at most one edge per symbol, sorted by symbol. A DFA is immutable; accessors return
// copies.
type DFA struct {
	transitions [][]Edge
	subsets     [][]int
	isAccept    *bitset.BitSet
}

func newDFA() *DFA {
	return &DFA{isAccept: bitset.New(0)}
}

func (d *DFA) addState(subset []int, accept bool) {
	id := len(d.subsets)
	d.subsets = append(d.subsets, subset)
	d.transitions = append(d.transitions, nil)
	if accept {
		d.isAccept.Set(uint(id))
	}
}

// Callers add edges of a state in ascending symbol order.
func (d *DFA) addEdge(from int, symbol Symbol, to int) {
	d.transitions[from] = append(d.transitions[from], Edge{To: to, Symbol: symbol})
}

// NumStates How many states this DFA has.
func (d *DFA) NumStates() int {
	return len(d.subsets)
}

// States returns the state ids 0..NumStates()-1 in discovery order.
func (d *DFA) States() []int {
	states := make([]int, len(d.subsets))
	for i := range states {
		states[i] = i
	}
	return states
}

// Transitions returns, indexed by source state, the edges leaving each state in ascending symbol
// order.
func (d *DFA) Transitions() [][]Edge {
	result := make([][]Edge, len(d.transitions))
	for i, edges := range d.transitions {
		result[i] = slices.Clone(edges)
		if result[i] == nil {
			result[i] = []Edge{}
		}
	}
	return result
}

// InitialState is always 0.
func (d *DFA) InitialState() int {
	return 0
}

// FinalStates returns the accept states in ascending order.
func (d *DFA) FinalStates() []int {
	return bitsetToInts(d.isAccept)
}

func (d *DFA) IsFinal(state int) bool {
	return d.isAccept.Test(uint(state))
}

// Subset returns the NFA states that DFA state stands for, ascending.
func (d *DFA) Subset(state int) []int {
	return slices.Clone(d.subsets[state])
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (d *DFA) Step(state int, symbol Symbol) int {
	if state < 0 || state >= len(d.transitions) {
		return -1
	}
	edges := d.transitions[state]
	i, found := slices.BinarySearchFunc(edges, symbol, func(e Edge, s Symbol) int {
		return int(e.Symbol) - int(s)
	})
	if !found {
		return -1
	}
	return edges[i].To
}

// Alphabet returns every symbol labelling an edge, ascending.
func (d *DFA) Alphabet() []Symbol {
	var symbols []Symbol
	for _, edges := range d.transitions {
		for _, e := range edges {
			symbols = append(symbols, e.Symbol)
		}
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}

func (d *DFA) String() string {
	var sb strings.Builder
	sb.WriteString("States:")
	for i := range d.subsets {
		fmt.Fprintf(&sb, " %d", i)
	}
	fmt.Fprintf(&sb, "\nInitial state: %d\nFinal states:", d.InitialState())
	for _, s := range d.FinalStates() {
		fmt.Fprintf(&sb, " %d", s)
	}
	sb.WriteByte('\n')
	for from, edges := range d.transitions {
		for _, e := range edges {
			fmt.Fprintf(&sb, "%d -> %d on %s\n", from, e.To, e.Symbol)
		}
	}
	return sb.String()
}
