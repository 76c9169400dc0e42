package engine

import (
	"fmt"

	"github.com/lixenwraith/gesture-lane/core"
)

// ScrollSlot is one lane position; Age counts ticks since the slot entered at the head
type ScrollSlot struct {
	Symbol core.Symbol
	Age    int
}

// ScrollQueue is the fixed-depth lane between the spawn point and the judgment line
// Backed by a ring: advancing moves the head index instead of copying slots
type ScrollQueue struct {
	slots    []core.Symbol
	head     int // index of the age-0 slot
	advances int // saturates at depth
}

// NewScrollQueue creates a lane of the given depth filled with Neutral
func NewScrollQueue(depth int) (*ScrollQueue, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("queue depth must be positive, got %d", depth)
	}
	return &ScrollQueue{
		slots: make([]core.Symbol, depth),
	}, nil
}

// Depth returns the lane capacity
func (q *ScrollQueue) Depth() int {
	return len(q.slots)
}

// JudgmentIndex is the slot position evaluated each tick
func (q *ScrollQueue) JudgmentIndex() int {
	return len(q.slots) - 1
}

// Advance performs the single per-tick shift
// The slot judged on the previous tick falls off, every other slot ages by one, spawned enters at the head.
// Returns the symbol now at the judgment index and whether the lane is primed; an unprimed lane yields Neutral
func (q *ScrollQueue) Advance(spawned core.Symbol) (core.Symbol, bool) {
	n := len(q.slots)
	q.head = (q.head + n - 1) % n
	q.slots[q.head] = spawned

	if q.advances < n {
		q.advances++
	}
	if q.advances < n {
		return core.Neutral, false
	}
	return q.at(n - 1), true
}

// Primed reports whether the first spawned slot has reached the judgment line
func (q *ScrollQueue) Primed() bool {
	return q.advances >= len(q.slots)
}

// Symbols returns lane contents ordered head first, judgment slot last
func (q *ScrollQueue) Symbols() []core.Symbol {
	out := make([]core.Symbol, len(q.slots))
	for i := range out {
		out[i] = q.at(i)
	}
	return out
}

// Slots returns lane contents with ages, head first
func (q *ScrollQueue) Slots() []ScrollSlot {
	out := make([]ScrollSlot, len(q.slots))
	for i := range out {
		out[i] = ScrollSlot{Symbol: q.at(i), Age: i}
	}
	return out
}

func (q *ScrollQueue) at(age int) core.Symbol {
	return q.slots[(q.head+age)%len(q.slots)]
}
