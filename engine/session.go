package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/gesture-lane/config"
	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/status"
)

// Frame is the read-only view handed to render sinks after each tick
type Frame struct {
	SessionID string        `json:"session_id"`
	State     GameState     `json:"state"`
	Lane      []core.Symbol `json:"lane"`
	TickCount uint64        `json:"tick_count"`
	Primed    bool          `json:"primed"`
	Judgment  Judgment      `json:"judgment"`
}

// Session owns all mutable game state for one play-through
// Step must only be called from one goroutine; Snapshot and IsTerminal are safe from any
type Session struct {
	id       string
	alphabet core.Alphabet

	state   GameState
	queue   *ScrollQueue
	spawner *Spawner
	judge   Judge
	input   *InputChannel

	published atomic.Pointer[Frame]
	terminal  atomic.Bool

	// Cached metric pointers
	statTicks  *atomic.Int64
	statHits   *atomic.Int64
	statMisses *atomic.Int64
	statEmpty  *atomic.Int64
	statScore  *atomic.Int64
	statLife   *atomic.Int64
	statStreak *atomic.Int64
	statInput  *status.AtomicString
}

// SessionOption customizes NewSession
type SessionOption func(*Session)

// WithRegistry publishes per-tick metrics into reg
func WithRegistry(reg *status.Registry) SessionOption {
	return func(s *Session) {
		s.bindMetrics(reg)
	}
}

// WithSessionID overrides the generated UUID, used for reproducible traces
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession validates cfg and builds a fresh session reading from input
// A nil rng seeds a PCG source from cfg.Seed
func NewSession(cfg config.Config, input *InputChannel, rng RandomSource, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("session needs an input channel")
	}

	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRandomSource(cfg.Seed)
	}

	queue, err := NewScrollQueue(cfg.QueueDepth)
	if err != nil {
		return nil, err
	}
	spawner, err := NewSpawner(cfg.SpawnInterval, alphabet, rng)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		alphabet: alphabet,
		state:    NewGameState(cfg.LifeMax),
		queue:    queue,
		spawner:  spawner,
		input:    input,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.statTicks == nil {
		s.bindMetrics(status.NewRegistry())
	}

	initial := s.frame(Judgment{Outcome: OutcomeIdle})
	s.published.Store(&initial)
	s.publishMetrics(initial)

	return s, nil
}

func (s *Session) bindMetrics(reg *status.Registry) {
	s.statTicks = reg.Ints.Get(status.EngineTicks)
	s.statHits = reg.Ints.Get(status.JudgeHits)
	s.statMisses = reg.Ints.Get(status.JudgeMisses)
	s.statEmpty = reg.Ints.Get(status.JudgeEmpty)
	s.statScore = reg.Ints.Get(status.SessionScore)
	s.statLife = reg.Ints.Get(status.SessionLife)
	s.statStreak = reg.Ints.Get(status.SessionStreak)
	s.statInput = reg.Strings.Get(status.InputSymbol)
	reg.Strings.Get(status.SessionID).Store(s.id)

	s.statTicks.Store(0)
	s.statHits.Store(0)
	s.statMisses.Store(0)
	s.statEmpty.Store(0)
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Alphabet returns the symbol set in play
func (s *Session) Alphabet() core.Alphabet {
	return s.alphabet
}

// Step runs one tick: spawn, advance, judge, count
// A terminal session is frozen; Step returns its last frame with an idle judgment
func (s *Session) Step() Frame {
	if s.state.Terminal {
		last := *s.published.Load()
		last.Judgment = Judgment{Outcome: OutcomeIdle}
		return last
	}

	spawned := s.spawner.Spawn(s.state.TickCount)
	expected, primed := s.queue.Advance(spawned)
	observed := s.alphabet.Coerce(s.input.Load())

	judgment := Judgment{Expected: expected, Observed: observed, Outcome: OutcomeIdle}
	if primed {
		judgment.Outcome = s.judge.Evaluate(&s.state, expected, observed)
	}
	s.state.TickCount++

	f := s.frame(judgment)
	s.published.Store(&f)
	if s.state.Terminal {
		s.terminal.Store(true)
	}
	s.publishMetrics(f)

	return f
}

func (s *Session) frame(j Judgment) Frame {
	return Frame{
		SessionID: s.id,
		State:     s.state,
		Lane:      s.queue.Symbols(),
		TickCount: s.state.TickCount,
		Primed:    s.queue.Primed(),
		Judgment:  j,
	}
}

func (s *Session) publishMetrics(f Frame) {
	s.statTicks.Store(int64(f.TickCount))
	switch f.Judgment.Outcome {
	case OutcomeHit:
		s.statHits.Add(1)
	case OutcomeMiss:
		s.statMisses.Add(1)
	case OutcomeEmpty:
		s.statEmpty.Add(1)
	}
	s.statScore.Store(int64(f.State.Score))
	s.statLife.Store(int64(f.State.Life))
	s.statStreak.Store(int64(f.State.Streak))
	s.statInput.Store(f.Judgment.Observed.String())
}

// Snapshot returns the most recently published frame
func (s *Session) Snapshot() Frame {
	return *s.published.Load()
}

// IsTerminal reports whether life has run out
func (s *Session) IsTerminal() bool {
	return s.terminal.Load()
}
