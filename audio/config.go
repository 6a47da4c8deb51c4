// Package audio synthesizes the player's cue sounds and plays them through
// the system speaker.
package audio

import (
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/player"
)

// Config holds audio output settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   map[player.Cue]float64
}

// DefaultConfig returns audio enabled at the stock volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes: map[player.Cue]float64{
			player.CueJump:    0.6,
			player.CueBrake:   0.5,
			player.CueRespawn: 0.8,
		},
	}
}
