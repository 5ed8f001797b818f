package fsa

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomAutomaton returns an NFA over states 0..n-1 with initial state 0 and a few accept states.
func randomAutomaton(r *rand.Rand, n int, alphabet []Symbol, density float64) *Automaton {
	a := NewAutomaton()
	a.SetInitialState(0)
	symbols := append([]Symbol{Epsilon}, alphabet...)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			for _, symbol := range symbols {
				if r.Float64() < density/float64(len(symbols)) {
					a.AddTransition(from, to, symbol)
				}
			}
		}
		if r.Intn(4) == 0 {
			a.AddFinalState(from)
		}
	}
	return a
}

func randomString(r *rand.Rand, alphabet []Symbol, maxLen int) string {
	runes := make([]rune, r.Intn(maxLen+1))
	for i := range runes {
		runes[i] = rune(alphabet[r.Intn(len(alphabet))])
	}
	return string(runes)
}

func scenarioA() *Automaton {
	a := NewAutomaton()
	a.AddTransition(0, 1, Epsilon)
	a.AddTransition(0, 0, 'a')
	a.AddTransition(1, 1, 'b')
	a.SetInitialState(0)
	a.AddFinalState(1)
	return a
}

func TestDeterminize_NoInitialState(t *testing.T) {
	a := NewAutomaton()
	a.AddTransition(0, 1, 'a')
	a.AddFinalState(1)

	d, err := Determinize(a)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNoInitialState)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	// Same input, same failure.
	_, err = a.Determinize()
	assert.ErrorIs(t, err, ErrNoInitialState)
}

func TestDeterminize_ScenarioA(t *testing.T) {
	d, err := scenarioA().Determinize()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, d.States())
	assert.Equal(t, 0, d.InitialState())
	assert.Equal(t, []int{0, 1}, d.FinalStates())
	assert.Equal(t, [][]Edge{
		{{To: 0, Symbol: 'a'}, {To: 1, Symbol: 'b'}},
		{{To: 1, Symbol: 'b'}},
	}, d.Transitions())
	assert.Equal(t, []int{0, 1}, d.Subset(0))
	assert.Equal(t, []int{1}, d.Subset(1))
}

func TestDeterminize_ScenarioB(t *testing.T) {
	// Already deterministic, states numbered out of BFS order.
	a := NewAutomaton()
	a.SetInitialState(7)
	a.AddTransition(7, 3, 'b')
	a.AddTransition(7, 5, 'a')
	a.AddTransition(5, 3, 'a')
	a.AddTransition(3, 7, 'c')
	a.AddFinalState(3)
	require.True(t, a.IsDeterministic())

	d, err := a.Determinize()
	require.NoError(t, err)

	// BFS from 7 visiting symbols in order: 7 -> 0, 5 (on 'a') -> 1, 3 (on 'b') -> 2.
	assert.Equal(t, []int{0, 1, 2}, d.States())
	assert.Equal(t, [][]Edge{
		{{To: 1, Symbol: 'a'}, {To: 2, Symbol: 'b'}},
		{{To: 2, Symbol: 'a'}},
		{{To: 0, Symbol: 'c'}},
	}, d.Transitions())
	assert.Equal(t, []int{2}, d.FinalStates())
	assert.Equal(t, []int{7}, d.Subset(0))
	assert.Equal(t, []int{5}, d.Subset(1))
	assert.Equal(t, []int{3}, d.Subset(2))
}

func TestDeterminize_ScenarioC(t *testing.T) {
	a := NewAutomaton()
	a.SetInitialState(0)
	a.AddTransition(0, 1, 'a')
	// Unreachable island, including through epsilon.
	a.AddTransition(2, 3, Epsilon)
	a.AddTransition(3, 2, 'a')
	a.AddTransition(2, 0, 'b')
	a.AddFinalState(3)
	a.AddFinalState(1)

	d, err := a.Determinize()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, d.States())
	for _, s := range d.States() {
		assert.NotContains(t, d.Subset(s), 2)
		assert.NotContains(t, d.Subset(s), 3)
	}
	assert.Equal(t, []Symbol{'a'}, d.Alphabet())
}

func TestDeterminize_Classic(t *testing.T) {
	// (a|b)*abb with epsilon moves, the textbook example.
	a := NewAutomaton()
	a.SetInitialState(0)
	a.AddTransition(0, 1, Epsilon)
	a.AddTransition(0, 7, Epsilon)
	a.AddTransition(1, 2, Epsilon)
	a.AddTransition(1, 4, Epsilon)
	a.AddTransition(2, 3, 'a')
	a.AddTransition(4, 5, 'b')
	a.AddTransition(3, 6, Epsilon)
	a.AddTransition(5, 6, Epsilon)
	a.AddTransition(6, 1, Epsilon)
	a.AddTransition(6, 7, Epsilon)
	a.AddTransition(7, 8, 'a')
	a.AddTransition(8, 9, 'b')
	a.AddTransition(9, 10, 'b')
	a.AddFinalState(10)

	d, err := a.Determinize()
	require.NoError(t, err)

	assert.Equal(t, 5, d.NumStates())
	assert.Equal(t, []int{0, 1, 2, 4, 7}, d.Subset(0))
	assert.Equal(t, []int{4}, d.FinalStates())
	for _, s := range []string{"abb", "aabb", "babb", "ababb"} {
		assert.True(t, d.Accepts(s), s)
	}
	for _, s := range []string{"", "ab", "abba", "bbb"} {
		assert.False(t, d.Accepts(s), s)
	}
}

func TestDeterminize_InitialOnly(t *testing.T) {
	a := NewAutomaton()
	a.SetInitialState(3)

	d, err := a.Determinize()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.States())
	assert.Empty(t, d.FinalStates())
	assert.Equal(t, [][]Edge{{}}, d.Transitions())

	a.AddFinalState(3)
	d, err = a.Determinize()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.FinalStates())
	assert.True(t, d.Accepts(""))
}

func TestDeterminize_DeadTransitionsElided(t *testing.T) {
	a := NewAutomaton()
	a.SetInitialState(0)
	a.AddTransition(0, 1, 'a')
	a.AddTransition(1, 2, 'b')
	a.AddFinalState(2)

	d, err := a.Determinize()
	require.NoError(t, err)

	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, -1, d.Step(0, 'b'))
	assert.Equal(t, -1, d.Step(1, 'a'))
	assert.Empty(t, d.Transitions()[2])
	for _, edges := range d.Transitions() {
		symbols := map[Symbol]bool{}
		for _, e := range edges {
			assert.False(t, symbols[e.Symbol], "duplicate edge for %v", e.Symbol)
			symbols[e.Symbol] = true
		}
	}
}

func TestDeterminize_IdempotentMutation(t *testing.T) {
	once := scenarioA()
	twice := scenarioA()
	twice.AddTransition(0, 1, Epsilon)
	twice.AddTransition(0, 0, 'a')
	twice.AddFinalState(1)

	d1, err := once.Determinize()
	require.NoError(t, err)
	d2, err := twice.Determinize()
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestDeterminize_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		a := randomAutomaton(r, 8, []Symbol{'a', 'b', 'c'}, 0.4)
		d1, err := a.Determinize()
		require.NoError(t, err)
		d2, err := a.Determinize()
		require.NoError(t, err)

		assert.Equal(t, d1.States(), d2.States())
		assert.Equal(t, d1.Transitions(), d2.Transitions())
		assert.Equal(t, d1.FinalStates(), d2.FinalStates())
	}
}

func TestDeterminize_DoesNotModifyInput(t *testing.T) {
	a := scenarioA()
	before := a.GetTransitions()
	_, err := a.Determinize()
	require.NoError(t, err)
	assert.Equal(t, before, a.GetTransitions())
	assert.Equal(t, []int{1}, a.FinalStates())
}

func TestDeterminize_LanguageEquivalence(t *testing.T) {
	alphabet := []Symbol{'a', 'b', 'c'}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := randomAutomaton(r, 2+r.Intn(8), alphabet, 0.5)
		d, err := a.Determinize()
		require.NoError(t, err)

		for j := 0; j < 100; j++ {
			s := randomString(r, alphabet, 8)
			assert.Equal(t, a.Accepts(s), d.Accepts(s), "automaton %d, input %q", i, s)
		}
	}
}

func TestDeterminize_Reachability(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 30; i++ {
		a := randomAutomaton(r, 9, []Symbol{'a', 'b'}, 0.3)
		d, err := a.Determinize()
		require.NoError(t, err)

		seen := make([]bool, d.NumStates())
		seen[0] = true
		workList := []int{0}
		for len(workList) > 0 {
			s := workList[0]
			workList = workList[1:]
			for _, e := range d.Transitions()[s] {
				require.Less(t, e.To, d.NumStates())
				if !seen[e.To] {
					seen[e.To] = true
					workList = append(workList, e.To)
				}
			}
		}
		for s, ok := range seen {
			assert.True(t, ok, "state %d unreachable", s)
			assert.Equal(t, s, d.States()[s])
		}
	}
}

func TestDeterminize_DenseAndSparseAgree(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 30; i++ {
		a := randomAutomaton(r, 10, []Symbol{'x', 'y'}, 0.4)
		dense, err := a.Determinize()
		require.NoError(t, err)
		sparse, err := a.Determinize(WithDenseLimit(0))
		require.NoError(t, err)
		assert.Equal(t, dense.String(), sparse.String())
		assert.Equal(t, dense.Transitions(), sparse.Transitions())
	}
}

func TestDeterminize_SparseIDs(t *testing.T) {
	a := NewAutomaton()
	a.SetInitialState(1_000_000)
	a.AddTransition(1_000_000, 5, 'a')
	a.AddTransition(1_000_000, 2_000_000, 'a')
	a.AddTransition(5, 5, 'b')
	a.AddFinalState(2_000_000)

	d, err := a.Determinize()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, d.States())
	assert.Equal(t, []int{5, 2_000_000}, d.Subset(1))
	assert.Equal(t, []int{5}, d.Subset(2))
	assert.Equal(t, []int{1}, d.FinalStates())
	assert.True(t, d.Accepts("a"))
	assert.False(t, d.Accepts("ab"))
}

func TestDeterminize_HugeIDs(t *testing.T) {
	tests := []struct {
		name      string
		mid       int
		final     int
		numStates int
	}{
		{name: "Shift62", mid: 1 << 62, final: 1<<62 + 1, numStates: 1<<62 + 2},
		{name: "MaxInt", mid: 1 << 62, final: math.MaxInt, numStates: math.MaxInt},
		{name: "MaxIntOnly", mid: math.MaxInt - 1, final: math.MaxInt, numStates: math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutomaton()
			a.SetInitialState(0)
			a.AddTransition(0, tt.mid, 'a')
			a.AddTransition(tt.mid, tt.final, Epsilon)
			a.AddTransition(tt.final, 0, 'b')
			a.AddFinalState(tt.final)

			assert.Equal(t, tt.numStates, a.NumStates())
			assert.Equal(t, []int{tt.final}, a.FinalStates())
			assert.Equal(t, []int{tt.mid, tt.final}, a.EpsilonClosure(tt.mid))
			assert.True(t, a.Accepts("a"))
			assert.True(t, a.Accepts("aba"))
			assert.False(t, a.Accepts("ab"))

			for _, limit := range []int{0, DefaultDenseLimit} {
				d, err := a.Determinize(WithDenseLimit(limit))
				require.NoError(t, err)
				assert.Equal(t, 2, d.NumStates())
				assert.Equal(t, []int{tt.mid, tt.final}, d.Subset(1))
				assert.Equal(t, []int{1}, d.FinalStates())
				assert.True(t, d.Accepts("aba"))
				assert.False(t, d.Accepts("ab"))
			}
		})
	}
}

func TestDeterminize_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := scenarioA().Determinize(WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=\"dfa state\" id=0")
	assert.Contains(t, buf.String(), "dfa_states=2")
}
