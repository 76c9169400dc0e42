package engine

// RenderSink receives one frame per tick on the game loop goroutine
// Sinks must not retain or mutate the frame's Lane slice
type RenderSink interface {
	Render(Frame)
}

// RenderFunc adapts a function to RenderSink
type RenderFunc func(Frame)

// Render calls f
func (f RenderFunc) Render(fr Frame) {
	f(fr)
}

// MultiSink fans a frame out to several sinks in order
type MultiSink []RenderSink

// Render forwards to every non-nil sink
func (m MultiSink) Render(fr Frame) {
	for _, s := range m {
		if s != nil {
			s.Render(fr)
		}
	}
}

type nopSink struct{}

func (nopSink) Render(Frame) {}
