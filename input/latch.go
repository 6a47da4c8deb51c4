package input

import "sync"

// HoldLatch synthesizes held buttons from press-only key events
// Each press keeps its buttons down for a number of frames; key auto-repeat
// refreshes the counter so a physically held key stays held
// Safe for one event goroutine and one frame goroutine
type HoldLatch struct {
	mu       sync.Mutex
	frames   int
	counters [16]int
}

// NewHoldLatch creates a latch keeping presses alive for frames frames
func NewHoldLatch(frames int) *HoldLatch {
	if frames < 1 {
		frames = 1
	}
	return &HoldLatch{frames: frames}
}

// Press marks buttons as held
// Opposite directions cancel, the latest press wins
func (l *HoldLatch) Press(b Buttons) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b.Has(ButtonLeft) {
		l.counters[bitIndex(ButtonRight)] = 0
	}
	if b.Has(ButtonRight) {
		l.counters[bitIndex(ButtonLeft)] = 0
	}
	if b.Has(ButtonUp) {
		l.counters[bitIndex(ButtonDown)] = 0
	}
	if b.Has(ButtonDown) {
		l.counters[bitIndex(ButtonUp)] = 0
	}
	for i := range l.counters {
		if b&(1<<i) != 0 {
			l.counters[i] = l.frames
		}
	}
}

// Release drops buttons immediately
func (l *HoldLatch) Release(b Buttons) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.counters {
		if b&(1<<i) != 0 {
			l.counters[i] = 0
		}
	}
}

// Buttons returns the held mask for this frame and ages every press by one frame
func (l *HoldLatch) Buttons() Buttons {
	l.mu.Lock()
	defer l.mu.Unlock()

	var held Buttons
	for i := range l.counters {
		if l.counters[i] > 0 {
			held |= 1 << i
			l.counters[i]--
		}
	}
	return held
}

func bitIndex(b Buttons) int {
	for i := 0; i < 16; i++ {
		if b == 1<<i {
			return i
		}
	}
	return 0
}
