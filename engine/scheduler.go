package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hillside/input"
)

// InputSource supplies the held buttons for each frame
type InputSource interface {
	Buttons() input.Buttons
}

// finiteSource is an InputSource with an end, such as a replay script
type finiteSource interface {
	Done() bool
}

func sourceDone(src InputSource) bool {
	f, ok := src.(finiteSource)
	return ok && f.Done()
}

// Scheduler steps a World on a fixed tick
// It is the only goroutine that touches the World while running
type Scheduler struct {
	world    *World
	interval time.Duration

	// onFrame runs after every step, renderers hook here
	onFrame func(*World)

	running atomic.Bool
	ticks   atomic.Uint64
	log     zerolog.Logger
}

// NewScheduler creates a scheduler ticking every interval
func NewScheduler(world *World, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Scheduler{
		world:    world,
		interval: interval,
		log:      log,
	}
}

// OnFrame sets the post-step hook, must be called before Run
func (s *Scheduler) OnFrame(fn func(*World)) {
	s.onFrame = fn
}

// Ticks returns the number of frames stepped
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

// Run steps the world once per tick until ctx is cancelled or a finite source runs out
// Returns ctx.Err() on cancellation, nil when the source ended
func (s *Scheduler) Run(ctx context.Context, src InputSource) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Debug().Dur("interval", s.interval).Msg("scheduler started")
	defer func() {
		s.log.Debug().Uint64("ticks", s.ticks.Load()).Msg("scheduler stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if sourceDone(src) {
				return nil
			}
			s.world.Step(src.Buttons())
			s.ticks.Add(1)
			if s.onFrame != nil {
				s.onFrame(s.world)
			}
		}
	}
}
