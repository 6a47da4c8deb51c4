package engine

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hillside/player"
)

// CueFanout forwards each cue to every subscriber in subscription order
type CueFanout struct {
	mu        sync.RWMutex
	listeners []player.CueListener
}

func NewCueFanout(listeners ...player.CueListener) *CueFanout {
	f := &CueFanout{}
	for _, l := range listeners {
		f.Add(l)
	}
	return f
}

// Add subscribes l, nil is ignored
func (f *CueFanout) Add(l player.CueListener) {
	if l == nil {
		return
	}
	f.mu.Lock()
	f.listeners = append(f.listeners, l)
	f.mu.Unlock()
}

func (f *CueFanout) OnCue(c player.Cue) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.listeners {
		l.OnCue(c)
	}
}

// CueLog records cues: respawns at info, the rest at debug
type CueLog struct {
	log   zerolog.Logger
	frame func() uint64
}

func NewCueLog(log zerolog.Logger, frame func() uint64) *CueLog {
	return &CueLog{log: log, frame: frame}
}

func (c *CueLog) OnCue(cue player.Cue) {
	ev := c.log.Debug()
	if cue == player.CueRespawn {
		ev = c.log.Info()
	}
	ev.Uint64("frame", c.frame()).Stringer("cue", cue).Msg("player cue")
}
