package fsa

// Accepts Returns true if the unique run of the DFA over input ends in an accept state.
func (d *DFA) Accepts(input string) bool {
	state := d.InitialState()
	for _, r := range input {
		state = d.Step(state, Symbol(r))
		if state == -1 {
			return false
		}
	}
	return d.IsFinal(state)
}

// Accepts Returns true if some run of the automaton over input, following epsilon transitions
// freely, ends in an accept state. An automaton without an initial state accepts nothing.
func (a *Automaton) Accepts(input string) bool {
	if !a.hasInitial {
		return false
	}
	current := newStateSet(a.maxState, DefaultDenseLimit)
	current.Add(a.initial)
	a.closure(current)

	for _, r := range input {
		next := newStateSet(a.maxState, DefaultDenseLimit)
		for _, s := range current.GetArray() {
			a.move(s, Symbol(r), next)
		}
		if next.Size() == 0 {
			return false
		}
		a.closure(next)
		current = next
	}
	return a.hasAccept(current)
}
