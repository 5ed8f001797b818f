package fsa

import "log/slog"

type options struct {
	logger     *slog.Logger
	denseLimit int
}

// Option configures Determinize.
type Option func(*options)

// WithLogger makes Determinize trace every discovered DFA state at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDenseLimit sets the state id below which subsets are keyed by bitset instead of by sorted id
// sequence. It applies when every referenced id is below the limit. Both produce the same DFA.
func WithDenseLimit(limit int) Option {
	return func(o *options) {
		o.denseLimit = limit
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:     slog.New(slog.DiscardHandler),
		denseLimit: DefaultDenseLimit,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Determinize converts the automaton to an equivalent DFA. See the package function.
func (a *Automaton) Determinize(opts ...Option) (*DFA, error) {
	return Determinize(a, opts...)
}

// Determinize Determinizes the given automaton with the subset construction.
//
// DFA state 0 is the epsilon closure of the initial state. States are numbered in breadth first
// discovery order and the symbols of each state are explored in ascending order, so the result only
// depends on the transition set, the initial state and the accept states. Subsets with no
// successor on a symbol get no edge for it; there is no dead state. Only reachable subsets become
// states. Worst case complexity: exponential in the number of NFA states.
//
// It fails only with ErrNoInitialState. a is not modified.
func Determinize(a *Automaton, opts ...Option) (*DFA, error) {
	if !a.hasInitial {
		return nil, ErrNoInitialState
	}
	o := newOptions(opts...)
	start := newStateSet(a.maxState, o.denseLimit)
	start.Add(a.initial)
	a.closure(start)
	initialSet := start.Freeze(0)

	d := newDFA()
	d.addState(initialSet.GetArray(), a.hasAccept(initialSet))
	o.logger.Debug("dfa state", "id", 0, "subset", initialSet.GetArray(), "accept", d.IsFinal(0))

	newState := NewHashMap[int](WithCapacity(16))
	newState.Set(initialSet, 0)

	workList := []*FrozenIntSet{initialSet}
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		subset := current.GetArray()

		for _, symbol := range a.symbols(subset) {
			target := newStateSet(a.maxState, o.denseLimit)
			for _, s := range subset {
				a.move(s, symbol, target)
			}
			a.closure(target)
			if target.Size() == 0 {
				continue
			}

			id, ok := newState.Get(target)
			if !ok {
				id = d.NumStates()
				frozen := target.Freeze(id)
				newState.Set(frozen, id)
				workList = append(workList, frozen)
				d.addState(frozen.GetArray(), a.hasAccept(frozen))
				o.logger.Debug("dfa state", "id", id, "subset", frozen.GetArray(), "accept", d.IsFinal(id))
			}
			d.addEdge(current.State(), symbol, id)
		}
	}

	o.logger.Debug("determinized", "nfa_states", a.NumStates(), "dfa_states", d.NumStates())
	return d, nil
}
