package scenario

import (
	"context"
	"fmt"

	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/engine"
)

// Result is a finished scenario run
type Result struct {
	engine.Result
	Name   string
	Frames []engine.Frame
}

// scriptedSource replays fixed draws, then defers to a seeded fallback
type scriptedSource struct {
	draws    []int
	next     int
	fallback engine.RandomSource
}

func (s *scriptedSource) IntN(n int) int {
	if s.next < len(s.draws) {
		v := s.draws[s.next]
		s.next++
		return v % n
	}
	return s.fallback.IntN(n)
}

// Run drives the scenario through a GameLoop on a ManualTicker
// Each tick stores the scripted input, releases one tick and waits for its frame,
// so input and spawns line up with tick numbers exactly
func Run(sc *Scenario, sink engine.RenderSink) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	var rng engine.RandomSource = engine.NewRandomSource(sc.Config.Seed)
	if len(sc.Spawns) > 0 {
		rng = &scriptedSource{draws: sc.Spawns, fallback: rng}
	}

	in := engine.NewInputChannel()
	session, err := engine.NewSession(sc.Config, in, rng, engine.WithSessionID(sc.Name))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	frames := make(chan engine.Frame, 1)
	ticker := engine.NewManualTicker()
	loop := engine.NewGameLoop(session, ticker, engine.MultiSink{
		sink,
		engine.RenderFunc(func(f engine.Frame) { frames <- f }),
	})
	if err := loop.Start(context.Background()); err != nil {
		return nil, err
	}

	res := &Result{Name: sc.Name}
	for t := 0; t < sc.Ticks; t++ {
		if t < len(sc.Input) {
			in.Store(sc.Input[t])
		}
		if !ticker.Tick() {
			break
		}
		f := <-frames
		f.Lane = append([]core.Symbol(nil), f.Lane...)
		res.Frames = append(res.Frames, f)
		if f.State.Terminal {
			break
		}
	}

	loop.Stop()
	<-loop.Done()
	res.Result, _ = loop.Result()
	return res, nil
}
