package network

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/engine"
	"github.com/lixenwraith/gesture-lane/input"
	"github.com/lixenwraith/gesture-lane/status"
)

// SensorMessage is one observation pushed by a remote sensor
// Exactly one of Pose or Symbol is set
type SensorMessage struct {
	Pose   string `json:"pose,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// StatusResponse is the /status payload
type StatusResponse struct {
	Running bool            `json:"running"`
	Frame   *engine.Frame   `json:"frame,omitempty"`
	Metrics status.Snapshot `json:"metrics"`
}

// ErrBadMessage is returned for sensor frames that name neither or both fields
var ErrBadMessage = errors.New("bad sensor message")

// Resolve maps a message to a symbol in the alphabet
// Unknown poses read as Neutral; unknown symbol names are an error
func (m SensorMessage) Resolve(poses input.PoseTable, alphabet core.Alphabet) (core.Symbol, error) {
	switch {
	case m.Pose != "" && m.Symbol != "":
		return core.Neutral, fmt.Errorf("%w: both pose and symbol set", ErrBadMessage)
	case m.Pose != "":
		return alphabet.Coerce(poses.Symbol(m.Pose)), nil
	case m.Symbol != "":
		s, err := core.ParseSymbol(m.Symbol)
		if err != nil {
			return core.Neutral, fmt.Errorf("%w: %w", ErrBadMessage, err)
		}
		return alphabet.Coerce(s), nil
	}
	return core.Neutral, fmt.Errorf("%w: empty", ErrBadMessage)
}
