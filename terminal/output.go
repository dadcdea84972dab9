package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/a-rossetti/spinning-torus/render"
)

// ANSI paints frames with raw escape sequences
// Every frame is assembled in one buffer and flushed with a single write to avoid tearing
type ANSI struct {
	out    io.Writer
	writer *bufio.Writer

	// Set while the cursor is hidden; Restore swaps it back exactly once
	hidden atomic.Bool
}

// NewANSI creates an ANSI screen on out
func NewANSI(out io.Writer) *ANSI {
	return &ANSI{
		out:    out,
		writer: bufio.NewWriterSize(out, 32768), // 32KB, fits a full 80x40 frame several times over
	}
}

// Init hides the cursor
func (a *ANSI) Init() error {
	if _, err := a.out.Write(csiCursorHide); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	a.hidden.Store(true)
	return nil
}

// Present clears, homes and writes every row newline-terminated, then flushes once
func (a *ANSI) Present(f *render.Frame) error {
	w := a.writer
	w.Write(csiClear)
	for y := 0; y < f.Height; y++ {
		w.Write(f.Row(y))
		w.Write(newline)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// Restore writes the show-cursor sequence straight to the underlying writer
// Bypasses the frame buffer so it never waits on a frame in progress
func (a *ANSI) Restore() {
	if a.hidden.CompareAndSwap(true, false) {
		a.out.Write(csiCursorShow)
	}
}
