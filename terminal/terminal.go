package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-rossetti/spinning-torus/render"
)

// Screen is a frame presenter with an explicit lifecycle
type Screen interface {
	// Init prepares the terminal: hides the cursor
	Init() error

	// Present paints a whole frame; no partial frames reach the terminal
	Present(f *render.Frame) error

	// Restore shows the cursor again. Idempotent and lock-free, safe from the signal trap
	Restore()
}

// Backend names accepted by New
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// ErrUnknownBackend is returned by New for an unrecognized backend name
var ErrUnknownBackend = errors.New("unknown backend")

// New returns the Screen for the named backend writing to stdout
func New(backend string) (Screen, error) {
	switch backend {
	case "", BackendANSI:
		return NewANSI(os.Stdout), nil
	case BackendTcell:
		t, err := NewTcell()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownBackend, backend, BackendANSI, BackendTcell)
	}
}

// EmergencyReset restores cursor and attributes when the Screen itself cannot be trusted
// Call this from panic recovery if Restore cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
