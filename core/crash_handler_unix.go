//go:build unix

package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"golang.org/x/sys/unix"
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

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHILLSIDE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// resetTerminalMode turns echo and line mode back on
// Escape sequences alone do not restore termios
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
