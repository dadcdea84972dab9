//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// trapSignals are the signals that end the animation
var trapSignals = []os.Signal{unix.SIGINT, unix.SIGTERM}

// Size returns the terminal size for a given fd
func Size(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// signalCode maps a trapped signal to the process exit code: the signal number itself
func signalCode(sig os.Signal) int {
	if s, ok := sig.(unix.Signal); ok {
		return int(s)
	}
	return 1
}

func signalName(sig os.Signal) string {
	if s, ok := sig.(unix.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}

// raiseInterrupt delivers SIGINT to this process
func raiseInterrupt() {
	unix.Kill(unix.Getpid(), unix.SIGINT)
}
