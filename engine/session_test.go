package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gesture-lane/config"
	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/status"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(3, 1, 0)
	_, err := NewSession(cfg, NewInputChannel(), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = testConfig(3, 0, 3)
	_, err = NewSession(cfg, NewInputChannel(), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = NewSession(testConfig(3, 1, 3), nil, nil)
	assert.Error(t, err)
}

func TestNewSessionInitialState(t *testing.T) {
	s, _ := newTestSession(t, testConfig(5, 12, 40), nil)

	f := s.Snapshot()
	assert.Equal(t, "test", f.SessionID)
	assert.Equal(t, GameState{Life: 10, LifeMax: 10}, f.State)
	assert.Len(t, f.Lane, 40)
	assert.False(t, f.Primed)
	assert.False(t, s.IsTerminal())
}

func TestSessionGeneratesUUID(t *testing.T) {
	a, err := NewSession(testConfig(3, 1, 3), NewInputChannel(), nil)
	require.NoError(t, err)
	b, err := NewSession(testConfig(3, 1, 3), NewInputChannel(), nil)
	require.NoError(t, err)

	assert.Len(t, a.ID(), 36)
	assert.NotEqual(t, a.ID(), b.ID())
}

// Spawns [A, Neutral, B] into a 3-deep lane; tick 1's spawn reaches the line on tick 3
func TestSessionFirstJudgmentHit(t *testing.T) {
	s, input := newTestSession(t, testConfig(3, 1, 3), &scriptedRandom{draws: []int{1, 0, 2}})

	input.Store(core.SymbolA)
	f1 := s.Step()
	f2 := s.Step()
	assert.Equal(t, OutcomeIdle, f1.Judgment.Outcome)
	assert.Equal(t, OutcomeIdle, f2.Judgment.Outcome)

	f3 := s.Step()
	assert.Equal(t, core.SymbolA, f3.Judgment.Expected)
	assert.Equal(t, OutcomeHit, f3.Judgment.Outcome)
	assert.Equal(t, 1, f3.State.Score)
	assert.Equal(t, 1, f3.State.Streak)
	assert.Equal(t, 10, f3.State.Life)
	assert.Equal(t, uint64(3), f3.TickCount)
}

func TestSessionFirstJudgmentMiss(t *testing.T) {
	s, input := newTestSession(t, testConfig(3, 1, 3), &scriptedRandom{draws: []int{1, 0, 2}})

	input.Store(core.SymbolB)
	s.Step()
	s.Step()
	f3 := s.Step()

	assert.Equal(t, OutcomeMiss, f3.Judgment.Outcome)
	assert.Equal(t, 0, f3.State.Score)
	assert.Equal(t, -1, f3.State.Streak)
	assert.Equal(t, 9, f3.State.Life)

	// Tick 4 judges tick 2's Neutral spawn: state unchanged whatever the input
	input.Store(core.SymbolC)
	f4 := s.Step()
	assert.Equal(t, OutcomeEmpty, f4.Judgment.Outcome)
	assert.Equal(t, f3.State.Score, f4.State.Score)
	assert.Equal(t, f3.State.Streak, f4.State.Streak)
	assert.Equal(t, f3.State.Life, f4.State.Life)
}

func TestSessionNoScoringWhilePriming(t *testing.T) {
	const depth = 8
	// Every spawn is A and the input always matches: still nothing before depth ticks
	s, input := newTestSession(t, testConfig(2, 1, depth), &scriptedRandom{draws: []int{1}})
	input.Store(core.SymbolA)

	for i := 1; i < depth; i++ {
		f := s.Step()
		require.Equal(t, OutcomeIdle, f.Judgment.Outcome, "tick %d", i)
		require.Equal(t, 0, f.State.Score)
		require.False(t, f.Primed)
	}

	f := s.Step()
	assert.True(t, f.Primed)
	assert.Equal(t, OutcomeHit, f.Judgment.Outcome)
	assert.Equal(t, 1, f.State.Score)
}

func TestSessionInvariantsUnderRandomInput(t *testing.T) {
	cfg := testConfig(5, 2, 6)
	cfg.Seed = 1234
	s, input := newTestSession(t, cfg, nil)
	noise := NewRandomSource(4321)
	alphabet := core.MustAlphabet(5)

	prev := s.Snapshot().State
	for tick := 0; tick < 5000 && !prev.Terminal; tick++ {
		input.Store(alphabet.At(noise.IntN(5)))
		f := s.Step()
		st := f.State

		require.GreaterOrEqual(t, st.Score, prev.Score, "score never decreases")
		require.LessOrEqual(t, st.Life, prev.Life, "life never increases")
		require.GreaterOrEqual(t, st.Life, 0)
		require.LessOrEqual(t, st.Life, cfg.LifeMax)
		require.Equal(t, st.Life <= 0, st.Terminal)
		require.Equal(t, prev.TickCount+1, st.TickCount)

		if f.Judgment.Outcome == OutcomeEmpty || f.Judgment.Outcome == OutcomeIdle {
			require.Equal(t, prev.Score, st.Score)
			require.Equal(t, prev.Streak, st.Streak)
			require.Equal(t, prev.Life, st.Life)
		}
		if f.Judgment.Outcome == OutcomeHit && prev.Streak < 0 {
			require.Equal(t, 1, st.Streak)
		}
		prev = st
	}
	assert.True(t, prev.Terminal, "random input eventually loses all life")
}

func TestSessionDeterministicGivenSeed(t *testing.T) {
	run := func() []GameState {
		cfg := testConfig(4, 3, 10)
		cfg.Seed = 77
		s, input := newTestSession(t, cfg, nil)
		script := symbolsOf("A", "B", "-", "C", "A", "A", "B", "-", "C", "C", "B")

		var out []GameState
		for i := 0; i < 300; i++ {
			input.Store(script[i%len(script)])
			out = append(out, s.Step().State)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestSessionFrozenAfterTerminal(t *testing.T) {
	cfg := testConfig(2, 1, 1)
	cfg.LifeMax = 2
	s, _ := newTestSession(t, cfg, &scriptedRandom{draws: []int{1}})

	s.Step()
	f := s.Step()
	require.True(t, f.State.Terminal)
	require.True(t, s.IsTerminal())

	again := s.Step()
	assert.Equal(t, f.State, again.State)
	assert.Equal(t, OutcomeIdle, again.Judgment.Outcome)
}

func TestSessionCoercesObservedToAlphabet(t *testing.T) {
	s, input := newTestSession(t, testConfig(3, 1, 1), &scriptedRandom{draws: []int{0}})

	input.Store(core.SymbolD)
	f := s.Step()
	assert.Equal(t, core.Neutral, f.Judgment.Observed)
}

func TestSessionPublishesMetrics(t *testing.T) {
	reg := status.NewRegistry()
	s, err := NewSession(testConfig(2, 1, 1), NewInputChannel(), &scriptedRandom{draws: []int{1}}, WithRegistry(reg))
	require.NoError(t, err)

	s.Step()
	s.Step()

	snap := reg.Snapshot()
	assert.Equal(t, int64(2), snap.Ints["engine.ticks"])
	assert.Equal(t, int64(2), snap.Ints["judge.misses"])
	assert.Equal(t, int64(8), snap.Ints["session.life"])
	assert.Equal(t, int64(-2), snap.Ints["session.streak"])
	assert.Equal(t, "Neutral", snap.Strings["input.symbol"])
	assert.Equal(t, s.ID(), snap.Strings["session.id"])
}
