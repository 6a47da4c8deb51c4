package input

import (
	"fmt"
	"strconv"
	"strings"
)

var scriptLetters = map[rune]Buttons{
	'U': ButtonUp,
	'D': ButtonDown,
	'L': ButtonLeft,
	'R': ButtonRight,
	'A': ButtonA,
	'B': ButtonB,
	'C': ButtonC,
	'X': ButtonX,
	'Y': ButtonY,
	'Z': ButtonZ,
	'S': ButtonStart,
	'M': ButtonMode,
}

type scriptStep struct {
	held   Buttons
	frames int
}

// Script replays a fixed input sequence frame by frame
// Syntax: space separated steps, each a set of button letters (U D L R A B C
// X Y Z S M, or '.' for none) with an optional *count, e.g. "R*60 RA R*30 .*10"
type Script struct {
	steps []scriptStep
	step  int
	frame int
	loop  bool
}

// ParseScript compiles a script string
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Fields(src) {
		letters, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %q: bad count", tok)
			}
			letters, count = tok[:i], n
		}
		var held Buttons
		for _, r := range strings.ToUpper(letters) {
			if r == '.' {
				continue
			}
			b, ok := scriptLetters[r]
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown button %q", tok, r)
			}
			held |= b
		}
		s.steps = append(s.steps, scriptStep{held: held, frames: count})
	}
	return s, nil
}

// Loop makes the script restart after its last step
func (s *Script) Loop(loop bool) *Script {
	s.loop = loop
	return s
}

// Len is the script length in frames
func (s *Script) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.frames
	}
	return n
}

// Done reports whether a non-looping script is exhausted
func (s *Script) Done() bool {
	return !s.loop && s.step >= len(s.steps)
}

// Buttons returns the held mask for the next frame, 0 once done
func (s *Script) Buttons() Buttons {
	if len(s.steps) == 0 {
		return 0
	}
	if s.step >= len(s.steps) {
		if !s.loop {
			return 0
		}
		s.step = 0
	}
	st := s.steps[s.step]
	s.frame++
	if s.frame >= st.frames {
		s.frame = 0
		s.step++
	}
	return st.held
}
