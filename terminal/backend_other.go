//go:build !unix

package terminal

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

var trapSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Size returns the terminal size for a given fd
func Size(fd int) (width, height int, err error) {
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func signalCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return int(s)
	}
	return 1
}

func signalName(sig os.Signal) string {
	return sig.String()
}

// raiseInterrupt has no self-signal on these platforms; exit with the SIGINT code directly
func raiseInterrupt() {
	os.Exit(2)
}
