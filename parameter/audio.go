package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, roughly six frames of latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Jump cue: rising square sweep
const (
	JumpSoundDuration = 180 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 80 * time.Millisecond
	JumpSoundFreqFrom = 280.0
	JumpSoundFreqTo   = 880.0
)

// Brake cue: filtered noise skid over a low saw
const (
	BrakeSoundDuration = 220 * time.Millisecond
	BrakeSoundAttack   = 10 * time.Millisecond
	BrakeSoundRelease  = 120 * time.Millisecond
	BrakeSoundFreq     = 140.0
)

// Respawn cue: two falling notes
const (
	RespawnSoundNote1Duration = 90 * time.Millisecond
	RespawnSoundNote2Duration = 240 * time.Millisecond
	RespawnSoundAttack        = 5 * time.Millisecond
	RespawnSoundNote1Release  = 40 * time.Millisecond
	RespawnSoundNote2Release  = 180 * time.Millisecond
)
