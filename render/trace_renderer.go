package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lixenwraith/gesture-lane/engine"
)

// TraceFormat selects the TraceRenderer line encoding
type TraceFormat int

const (
	TraceText TraceFormat = iota
	TraceJSON
)

// ParseTraceFormat accepts "text" or "json"
func ParseTraceFormat(s string) (TraceFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TraceText, nil
	case "json":
		return TraceJSON, nil
	}
	return TraceText, fmt.Errorf("unknown trace format %q", s)
}

// traceRecord is one JSON trace line
type traceRecord struct {
	Tick     uint64 `json:"tick"`
	Lane     string `json:"lane"`
	Expected string `json:"expected"`
	Observed string `json:"observed"`
	Outcome  string `json:"outcome"`
	Score    int    `json:"score"`
	Streak   int    `json:"streak"`
	Life     int    `json:"life"`
	Terminal bool   `json:"terminal"`
}

// TraceRenderer writes one line per frame, used by headless runs and golden tests
// The first write error is kept and later frames are dropped
type TraceRenderer struct {
	mu     sync.Mutex
	w      io.Writer
	format TraceFormat
	err    error
}

// NewTraceRenderer creates a trace sink writing to w
func NewTraceRenderer(w io.Writer, format TraceFormat) *TraceRenderer {
	return &TraceRenderer{w: w, format: format}
}

// Render implements engine.RenderSink
func (r *TraceRenderer) Render(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}

	rec := traceRecord{
		Tick:     f.TickCount,
		Lane:     LaneString(f),
		Expected: f.Judgment.Expected.String(),
		Observed: f.Judgment.Observed.String(),
		Outcome:  f.Judgment.Outcome.String(),
		Score:    f.State.Score,
		Streak:   f.State.Streak,
		Life:     f.State.Life,
		Terminal: f.State.Terminal,
	}

	switch r.format {
	case TraceJSON:
		data, err := json.Marshal(rec)
		if err != nil {
			r.err = err
			return
		}
		data = append(data, '\n')
		_, r.err = r.w.Write(data)
	default:
		_, r.err = fmt.Fprintf(r.w, "tick=%d lane=%s expected=%s observed=%s outcome=%s score=%d streak=%d life=%d\n",
			rec.Tick, rec.Lane, rec.Expected, rec.Observed, rec.Outcome, rec.Score, rec.Streak, rec.Life)
	}
}

// Err returns the first write error
func (r *TraceRenderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// LaneString renders the lane top to bottom, '-' for Neutral, the judgment slot last
func LaneString(f engine.Frame) string {
	var b strings.Builder
	b.Grow(len(f.Lane))
	for _, s := range f.Lane {
		if s.IsNeutral() {
			b.WriteByte('-')
			continue
		}
		b.WriteString(s.String())
	}
	return b.String()
}
