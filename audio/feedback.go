package audio

import "github.com/lixenwraith/gesture-lane/engine"

// Player is the cue surface FeedbackSink drives, satisfied by SoundManager
type Player interface {
	PlayHit()
	PlayMiss()
	PlayGameOver()
}

// FeedbackSink turns judgments into sound cues
// One sink per session; Render runs on the loop goroutine only
type FeedbackSink struct {
	player Player
	over   bool
}

// NewFeedbackSink creates a render sink playing through p
func NewFeedbackSink(p Player) *FeedbackSink {
	return &FeedbackSink{player: p}
}

// Render implements engine.RenderSink
func (s *FeedbackSink) Render(f engine.Frame) {
	if s.over {
		return
	}

	if f.State.Terminal {
		s.over = true
		s.player.PlayGameOver()
		return
	}

	switch f.Judgment.Outcome {
	case engine.OutcomeHit:
		s.player.PlayHit()
	case engine.OutcomeMiss:
		s.player.PlayMiss()
	}
}
