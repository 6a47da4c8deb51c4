package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/player"
	"github.com/lixenwraith/hillside/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sliding between two frequencies
type oscillator struct {
	freqFrom float64
	freqTo   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqFrom: from,
		freqTo:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(0x5EED),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.noise.Next()>>11)/(1<<53)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freqFrom + (o.freqTo-o.freqFrom)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateJumpSound is a short rising chirp
func CreateJumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.JumpSoundFreqFrom, parameter.JumpSoundFreqTo, parameter.JumpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[player.CueJump]*cfg.MasterVolume)
}

// CreateBrakeSound is a noisy skid with a low body
func CreateBrakeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.BrakeSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.BrakeSoundDuration, parameter.BrakeSoundAttack, parameter.BrakeSoundRelease, rate)

	body := NewSweep(parameter.BrakeSoundFreq, parameter.BrakeSoundFreq/2, parameter.BrakeSoundDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, parameter.BrakeSoundDuration, parameter.BrakeSoundAttack, parameter.BrakeSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(bodyShaped, 0.4),
	)
	return newVolume(mixed, cfg.CueVolumes[player.CueBrake]*cfg.MasterVolume)
}

// CreateRespawnSound plays two falling notes
func CreateRespawnSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5
	n1 := NewOscillator(659.25, parameter.RespawnSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.RespawnSoundNote1Duration, parameter.RespawnSoundAttack, parameter.RespawnSoundNote1Release, rate)

	// A4
	n2 := NewOscillator(440.0, parameter.RespawnSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.RespawnSoundNote2Duration, parameter.RespawnSoundAttack, parameter.RespawnSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.CueVolumes[player.CueRespawn]*cfg.MasterVolume)
}

// CueSound returns a fresh streamer for a cue, nil for unknown cues
func CueSound(cue player.Cue, cfg *Config) beep.Streamer {
	switch cue {
	case player.CueJump:
		return CreateJumpSound(cfg)
	case player.CueBrake:
		return CreateBrakeSound(cfg)
	case player.CueRespawn:
		return CreateRespawnSound(cfg)
	default:
		return nil
	}
}
