package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency, aligned under the tick period
	AudioBufferDuration = 50 * time.Millisecond
)

// Hit Sound
const (
	HitSoundFrequency = 880
	HitSoundDuration  = 50 * time.Millisecond
)

// Miss Sound
const (
	MissSoundFrequency = 120
	MissSoundDuration  = 150 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration = 300 * time.Millisecond
)
