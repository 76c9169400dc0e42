package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
)

// Ticker is the schedulable tick source driving a GameLoop
type Ticker interface {
	Ticks() <-chan time.Time
	Stop()
}

// ClockTicker emits ticks at a fixed wall-clock period without busy-waiting
// Deadlines advance by whole periods to avoid drift; after falling more than MaxTickLag periods
// behind the deadline is rebased instead of bursting catch-up ticks
type ClockTicker struct {
	period time.Duration
	clock  TimeProvider
	ticks  chan time.Time

	dropped atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewClockTicker starts a ticker with the given period
func NewClockTicker(period time.Duration) *ClockTicker {
	t := &ClockTicker{
		period:   period,
		clock:    NewMonotonicTimeProvider(),
		ticks:    make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
	t.wg.Add(1)
	core.Go(t.run)
	return t
}

// Ticks returns the tick channel; at most one tick is buffered
func (t *ClockTicker) Ticks() <-chan time.Time {
	return t.ticks
}

// Dropped counts ticks discarded because the consumer had not taken the previous one
func (t *ClockTicker) Dropped() uint64 {
	return t.dropped.Load()
}

// Stop halts the ticker and waits for its goroutine
func (t *ClockTicker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

func (t *ClockTicker) run() {
	defer t.wg.Done()

	deadline := t.clock.Now().Add(t.period)
	timer := time.NewTimer(t.period)
	defer timer.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-timer.C:
		}

		now := t.clock.Now()
		select {
		case t.ticks <- now:
		default:
			t.dropped.Add(1)
		}

		deadline = deadline.Add(t.period)
		if now.Sub(deadline) > t.period*constant.MaxTickLag {
			deadline = now.Add(t.period)
		}

		wait := deadline.Sub(t.clock.Now())
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}

// ManualTicker delivers ticks on demand, for tests and cooperative drivers
type ManualTicker struct {
	ticks    chan time.Time
	stopChan chan struct{}
	stopOnce sync.Once
	count    atomic.Uint64
}

// NewManualTicker creates an unbuffered manual ticker
func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ticks:    make(chan time.Time),
		stopChan: make(chan struct{}),
	}
}

// Ticks returns the tick channel
func (m *ManualTicker) Ticks() <-chan time.Time {
	return m.ticks
}

// Tick blocks until the consumer takes a tick; false once the ticker is stopped
func (m *ManualTicker) Tick() bool {
	select {
	case <-m.stopChan:
		return false
	default:
	}

	select {
	case m.ticks <- time.Now():
		m.count.Add(1)
		return true
	case <-m.stopChan:
		return false
	}
}

// Count returns delivered ticks
func (m *ManualTicker) Count() uint64 {
	return m.count.Load()
}

// Stop releases any blocked Tick call
func (m *ManualTicker) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}
