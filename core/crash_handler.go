// Package core holds process-level helpers shared by the terminal binaries.
package core

import (
	"io"
	"os"
	"sync"
)

// Finisher restores a terminal taken over by a screen
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher
)

// RegisterTerminal sets the screen HandleCrash restores before printing, nil clears it
func RegisterTerminal(f Finisher) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

func registeredTerminal() Finisher {
	crashMu.Lock()
	defer crashMu.Unlock()
	return crashTerminal
}

var (
	seqCursorShow    = []byte("\x1b[?25h")
	seqAltScreenExit = []byte("\x1b[?1049l")
	seqSGR0          = []byte("\x1b[0m")
	seqAutoWrapOn    = []byte("\x1b[?7h")
	seqMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// EmergencyReset writes the sequences undoing a full-screen session
// Used when no screen is registered or Fini itself fails
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseOff)
	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	resetTerminalMode()
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the go keyword in binaries that own the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
