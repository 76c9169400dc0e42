package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gesture-lane/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager plays the judgment cues through a shared mixer
// Every Play call is a no-op until Initialize succeeds, so the game runs without a sound device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds
// beep has no speaker close, clearing the mixer leaves it silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// PlayHit plays a short high tone
func (sm *SoundManager) PlayHit() {
	tone, err := generators.SineTone(sampleRate, constant.HitSoundFrequency)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(constant.HitSoundDuration), &effects.Gain{Streamer: tone, Gain: -0.8}))
}

// PlayMiss plays a short low buzz
func (sm *SoundManager) PlayMiss() {
	sm.play(beep.Take(sampleRate.N(constant.MissSoundDuration), NewBuzzGenerator(sampleRate, constant.MissSoundFrequency)))
}

// PlayGameOver plays a falling rumble
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(constant.GameOverSoundDuration), NewDecayGenerator(sampleRate)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// DecayGenerator generates a falling tone over rumble with an exponential envelope
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay sound generator
func NewDecayGenerator(sr beep.SampleRate) *DecayGenerator {
	return &DecayGenerator{
		sr:   sr,
		seed: time.Now().UnixNano() & 0x7fffffff,
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 8)

		// LCG noise
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		freq := 220 * math.Exp(-t*3)
		tone := 0.3 * math.Sin(2*math.Pi*freq*t)

		sample := envelope * (0.15*noise + tone)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
