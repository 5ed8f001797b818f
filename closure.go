package fsa

// EpsilonClosure returns, in ascending order, every state reachable from states using only
// epsilon transitions, states included.
func (a *Automaton) EpsilonClosure(states ...int) []int {
	maxState := a.maxState
	for _, s := range states {
		maxState = max(maxState, s)
	}
	set := newStateSet(maxState, DefaultDenseLimit)
	for _, s := range states {
		set.Add(s)
	}
	a.closure(set)
	return set.GetArray()
}

// closure grows set in place until it is closed under epsilon transitions. It uses an explicit
// worklist so long epsilon chains do not grow the stack; a state already in set is never pushed
// again, which also ends epsilon cycles.
func (a *Automaton) closure(set *StateSet) {
	workList := set.GetArray()
	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		for _, e := range a.labelled(state, Epsilon) {
			if set.Add(e.dest) {
				workList = append(workList, e.dest)
			}
		}
	}
}
