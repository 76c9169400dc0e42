package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
)

func TestJudgeEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		start    GameState
		expected core.Symbol
		observed core.Symbol
		want     GameState
		outcome  Outcome
	}{
		{
			name:     "hit from zero",
			start:    GameState{Life: 10, LifeMax: 10},
			expected: core.SymbolA, observed: core.SymbolA,
			want:    GameState{Score: 1, Streak: 1, Life: 10, LifeMax: 10},
			outcome: OutcomeHit,
		},
		{
			name:     "hit extends positive streak",
			start:    GameState{Score: 4, Streak: 4, Life: 7, LifeMax: 10},
			expected: core.SymbolC, observed: core.SymbolC,
			want:    GameState{Score: 5, Streak: 5, Life: 7, LifeMax: 10},
			outcome: OutcomeHit,
		},
		{
			name:     "hit after negative streak floors to one",
			start:    GameState{Score: 2, Streak: -6, Life: 4, LifeMax: 10},
			expected: core.SymbolB, observed: core.SymbolB,
			want:    GameState{Score: 3, Streak: 1, Life: 4, LifeMax: 10},
			outcome: OutcomeHit,
		},
		{
			name:     "mismatch costs streak and life",
			start:    GameState{Score: 3, Streak: 2, Life: 10, LifeMax: 10},
			expected: core.SymbolA, observed: core.SymbolB,
			want:    GameState{Score: 3, Streak: 1, Life: 9, LifeMax: 10},
			outcome: OutcomeMiss,
		},
		{
			name:     "missing input on real symbol",
			start:    GameState{Streak: -2, Life: 5, LifeMax: 10},
			expected: core.SymbolD, observed: core.Neutral,
			want:    GameState{Streak: -3, Life: 4, LifeMax: 10},
			outcome: OutcomeMiss,
		},
		{
			name:     "empty slot with stray input is free",
			start:    GameState{Score: 1, Streak: 1, Life: 6, LifeMax: 10},
			expected: core.Neutral, observed: core.SymbolC,
			want:    GameState{Score: 1, Streak: 1, Life: 6, LifeMax: 10},
			outcome: OutcomeEmpty,
		},
		{
			name:     "empty slot with neutral input scores nothing",
			start:    GameState{Score: 1, Streak: -1, Life: 6, LifeMax: 10},
			expected: core.Neutral, observed: core.Neutral,
			want:    GameState{Score: 1, Streak: -1, Life: 6, LifeMax: 10},
			outcome: OutcomeEmpty,
		},
		{
			name:     "last life goes terminal",
			start:    GameState{Score: 9, Streak: 0, Life: 1, LifeMax: 10},
			expected: core.SymbolA, observed: core.Neutral,
			want:    GameState{Score: 9, Streak: -1, Life: 0, LifeMax: 10, Terminal: true},
			outcome: OutcomeMiss,
		},
		{
			name:     "terminal state is frozen",
			start:    GameState{Score: 9, Streak: -1, Life: 0, LifeMax: 10, Terminal: true},
			expected: core.SymbolA, observed: core.SymbolA,
			want:    GameState{Score: 9, Streak: -1, Life: 0, LifeMax: 10, Terminal: true},
			outcome: OutcomeIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.start
			got := Judge{}.Evaluate(&state, tt.expected, tt.observed)
			assert.Equal(t, tt.outcome, got)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeIdle, "idle"},
		{OutcomeEmpty, "empty"},
		{OutcomeHit, "hit"},
		{OutcomeMiss, "miss"},
		{Outcome(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.o.String())
	}
}

func TestJudgeUsesScoringConstants(t *testing.T) {
	var j Judge
	state := NewGameState(constant.LifeMax)

	require.Equal(t, OutcomeHit, j.Evaluate(&state, core.SymbolA, core.SymbolA))
	assert.Equal(t, constant.HitScore, state.Score)

	require.Equal(t, OutcomeMiss, j.Evaluate(&state, core.SymbolB, core.Neutral))
	assert.Equal(t, constant.LifeMax-constant.MissPenalty, state.Life)
}

func TestOutcomeTextRoundTrip(t *testing.T) {
	for _, o := range []Outcome{OutcomeIdle, OutcomeEmpty, OutcomeHit, OutcomeMiss} {
		text, err := o.MarshalText()
		require.NoError(t, err)

		var got Outcome
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, o, got)
	}

	var o Outcome
	assert.ErrorIs(t, o.UnmarshalText([]byte("unknown")), ErrUnknownOutcome)
}

func TestFrameJSONRoundTrip(t *testing.T) {
	in := Frame{
		SessionID: "run-1",
		State:     GameState{Score: 2, Streak: -1, Life: 3, LifeMax: 5, TickCount: 9},
		Lane:      []core.Symbol{core.SymbolB, core.Neutral, core.SymbolA},
		TickCount: 9,
		Primed:    true,
		Judgment:  Judgment{Expected: core.SymbolA, Observed: core.SymbolA, Outcome: OutcomeHit},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outcome":"hit"`)

	var out Frame
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
