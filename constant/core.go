package constant

import "time"

// Game Loop Timing
const (
	// DefaultTickPeriod is the game loop cadence
	DefaultTickPeriod = 100 * time.Millisecond

	// DefaultSamplePeriod is the polling cadence for pull-based symbol sources
	// Pushed sources (keyboard, websocket) write the input channel directly
	DefaultSamplePeriod = 5 * time.Millisecond

	// MaxTickLag is the number of tick periods the scheduler may fall behind before it rebases its deadline
	MaxTickLag = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "gesture-lane.log"
	MaxLogSize  = 10 * 1024 * 1024
)
