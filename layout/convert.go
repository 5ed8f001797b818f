package layout

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/geange/fsa"
)

// escape prefixes a literal symbol that would otherwise read back as the epsilon marker.
const escape = `\`

func (c Config) symbol(char string) (fsa.Symbol, error) {
	if char == "" || char == c.EpsilonMarker {
		return fsa.Epsilon, nil
	}
	if rest, ok := strings.CutPrefix(char, escape); ok && utf8.RuneCountInString(rest) == 1 {
		char = rest
	}
	r, size := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError || size != len(char) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, char)
	}
	return fsa.Symbol(r), nil
}

func (c Config) char(symbol fsa.Symbol) string {
	if symbol == fsa.Epsilon {
		return c.EpsilonMarker
	}
	char := symbol.String()
	if char == c.EpsilonMarker {
		return escape + char
	}
	return char
}

func (c Config) position(state int) Position {
	columns := max(c.Columns, 1)
	return Position{
		X: c.Origin.X + float64(state%columns)*c.Spacing,
		Y: c.Origin.Y + float64(state/columns)*c.Spacing,
	}
}

// Automaton builds the engine automaton described by the layout. Like the editor, it refuses a
// layout without a start state (fsa.ErrNoInitialState) or without transitions (ErrNoTransitions)
// before anything reaches the engine. Positions are ignored.
func (l *Layout) Automaton(cfg Config) (*fsa.Automaton, error) {
	if l.StartState == nil || *l.StartState == "" {
		return nil, fsa.ErrNoInitialState
	}
	if len(l.Transitions) == 0 {
		return nil, ErrNoTransitions
	}

	a := fsa.NewAutomaton()
	for i, t := range l.Transitions {
		from, err := ParseLabel(t.From)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		to, err := ParseLabel(t.To)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		symbol, err := cfg.symbol(t.Char)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		a.AddTransition(from, to, symbol)
	}

	start, err := ParseLabel(*l.StartState)
	if err != nil {
		return nil, fmt.Errorf("start state: %w", err)
	}
	a.SetInitialState(start)

	for _, label := range l.FinalStates {
		state, err := ParseLabel(label)
		if err != nil {
			return nil, fmt.Errorf("final state: %w", err)
		}
		a.AddFinalState(state)
	}
	return a, nil
}

func newLayout() *Layout {
	return &Layout{
		States:      make(map[string]Position),
		Transitions: []TransitionRecord{},
		FinalStates: []string{},
	}
}

// FromDFA lays the DFA out on the config's grid, one state per cell in id order.
func FromDFA(d *fsa.DFA, cfg Config) *Layout {
	l := newLayout()
	for _, s := range d.States() {
		l.States[Label(s)] = cfg.position(s)
	}
	for from, edges := range d.Transitions() {
		for _, e := range edges {
			l.Transitions = append(l.Transitions, TransitionRecord{
				From: Label(from),
				To:   Label(e.To),
				Char: cfg.char(e.Symbol),
			})
		}
	}
	start := Label(d.InitialState())
	l.StartState = &start
	for _, s := range d.FinalStates() {
		l.FinalStates = append(l.FinalStates, Label(s))
	}
	return l
}

// FromAutomaton lays out every state the automaton references, epsilon edges written with the
// config's marker.
func FromAutomaton(a *fsa.Automaton, cfg Config) *Layout {
	l := newLayout()
	states := a.FinalStates()
	for _, t := range a.GetTransitions() {
		l.Transitions = append(l.Transitions, TransitionRecord{
			From: Label(t.Source),
			To:   Label(t.Dest),
			Char: cfg.char(t.Symbol),
		})
		states = append(states, t.Source, t.Dest)
	}
	if initial, ok := a.InitialState(); ok {
		start := Label(initial)
		l.StartState = &start
		states = append(states, initial)
	}
	slices.Sort(states)
	for _, s := range slices.Compact(states) {
		l.States[Label(s)] = cfg.position(s)
	}
	for _, s := range a.FinalStates() {
		l.FinalStates = append(l.FinalStates, Label(s))
	}
	return l
}
