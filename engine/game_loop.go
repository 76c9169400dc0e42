package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gesture-lane/core"
)

// ErrAlreadyRunning is returned when Run or Start is called on a loop that has been started
var ErrAlreadyRunning = errors.New("game loop already started")

// EndReason says why a loop returned
type EndReason uint8

const (
	EndGameOver EndReason = iota
	EndStopped
	EndCancelled
)

// String returns the reason name
func (r EndReason) String() string {
	switch r {
	case EndGameOver:
		return "game over"
	case EndStopped:
		return "stopped"
	case EndCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the final state of a finished loop
type Result struct {
	SessionID string
	State     GameState
	Reason    EndReason
}

// GameLoop drives a Session from a Ticker and hands each frame to a RenderSink
// One loop runs one session once; the session and its queue are touched only by the loop goroutine
type GameLoop struct {
	session *Session
	ticker  Ticker
	sink    RenderSink
	logger  *log.Logger

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	result   atomic.Pointer[Result]
}

// LoopOption customizes NewGameLoop
type LoopOption func(*GameLoop)

// WithLogger sets the lifecycle logger
func WithLogger(l *log.Logger) LoopOption {
	return func(g *GameLoop) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGameLoop wires a session to its tick source and render sink; a nil sink discards frames
// The loop takes ownership of the ticker and stops it on exit
func NewGameLoop(session *Session, ticker Ticker, sink RenderSink, opts ...LoopOption) *GameLoop {
	if sink == nil {
		sink = nopSink{}
	}
	g := &GameLoop{
		session:  session,
		ticker:   ticker,
		sink:     sink,
		logger:   log.New(io.Discard, "", 0),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run blocks until game over, Stop or ctx cancellation
func (g *GameLoop) Run(ctx context.Context) (Result, error) {
	if !g.running.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRunning
	}
	return g.run(ctx), nil
}

// Start runs the loop on its own goroutine; use Done and Result to observe the end
func (g *GameLoop) Start(ctx context.Context) error {
	if !g.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	core.Go(func() {
		g.run(ctx)
	})
	return nil
}

// Stop requests the loop to end at the next tick boundary; safe to call repeatedly
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Done is closed when the loop has returned
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

// Result returns the final result once Done is closed
func (g *GameLoop) Result() (Result, bool) {
	if r := g.result.Load(); r != nil {
		return *r, true
	}
	return Result{}, false
}

// IsTerminal reports whether the session has run out of life
func (g *GameLoop) IsTerminal() bool {
	return g.session.IsTerminal()
}

// Session returns the driven session
func (g *GameLoop) Session() *Session {
	return g.session
}

func (g *GameLoop) run(ctx context.Context) Result {
	defer close(g.done)
	defer g.ticker.Stop()

	g.logger.Printf("session %s started", g.session.ID())

	finish := func(reason EndReason) Result {
		r := Result{
			SessionID: g.session.ID(),
			State:     g.session.Snapshot().State,
			Reason:    reason,
		}
		g.result.Store(&r)
		g.logger.Printf("session %s ended (%s): score=%d streak=%d life=%d ticks=%d",
			r.SessionID, reason, r.State.Score, r.State.Streak, r.State.Life, r.State.TickCount)
		return r
	}

	ticks := g.ticker.Ticks()
	for {
		select {
		case <-g.stopChan:
			return finish(EndStopped)
		case <-ctx.Done():
			return finish(EndCancelled)
		case _, ok := <-ticks:
			if !ok {
				return finish(EndStopped)
			}
		}

		// Stop and cancellation are honored at tick boundaries only
		select {
		case <-g.stopChan:
			return finish(EndStopped)
		case <-ctx.Done():
			return finish(EndCancelled)
		default:
		}

		frame := g.session.Step()
		g.sink.Render(frame)

		if frame.State.Terminal {
			return finish(EndGameOver)
		}
	}
}
