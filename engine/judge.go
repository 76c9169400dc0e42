package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
)

// Outcome classifies one tick's judgment
type Outcome uint8

const (
	// OutcomeIdle means no judgment ran: lane not primed or session already terminal
	OutcomeIdle Outcome = iota
	// OutcomeEmpty means a Neutral slot reached the line; free regardless of input
	OutcomeEmpty
	OutcomeHit
	OutcomeMiss
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeEmpty:
		return "empty"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Judgment records what was compared at the line on one tick
type Judgment struct {
	Expected core.Symbol `json:"expected"`
	Observed core.Symbol `json:"observed"`
	Outcome  Outcome     `json:"outcome"`
}

// Judge applies the scoring rules to a GameState
// Active until life reaches zero, then Terminal for good
type Judge struct{}

// Evaluate scores one primed tick and returns the outcome
func (Judge) Evaluate(state *GameState, expected, observed core.Symbol) Outcome {
	if state.Terminal {
		return OutcomeIdle
	}

	switch {
	case expected == core.Neutral:
		return OutcomeEmpty

	case expected == observed:
		if state.Streak < 0 {
			state.Streak = 0
		}
		state.Score += constant.HitScore
		state.Streak++
		return OutcomeHit

	default:
		state.Streak--
		state.Life -= constant.MissPenalty
		if state.Life <= 0 {
			state.Life = 0
			state.Terminal = true
		}
		return OutcomeMiss
	}
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ErrUnknownOutcome is returned when decoding an outcome name outside the closed set
var ErrUnknownOutcome = errors.New("unknown outcome")

// UnmarshalText decodes an outcome name produced by MarshalText
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, v := range []Outcome{OutcomeIdle, OutcomeEmpty, OutcomeHit, OutcomeMiss} {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
}
