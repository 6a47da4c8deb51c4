//go:build !unix

package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash resets the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if t := registeredTerminal(); t != nil {
		t.Fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\nHILLSIDE CRASHED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

func resetTerminalMode() {}
