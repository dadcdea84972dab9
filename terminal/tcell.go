package terminal

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/a-rossetti/spinning-torus/render"
)

// Tcell paints frames through a tcell.Screen
// tcell runs the terminal in raw mode, so Ctrl-C arrives as a key event; it is re-raised as SIGINT
// and takes the same path through Trap as an externally delivered signal
type Tcell struct {
	screen    tcell.Screen
	interrupt func()

	active atomic.Bool
}

// NewTcell creates a Tcell screen on the controlling terminal
func NewTcell() (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewTcellScreen(s), nil
}

// NewTcellScreen wraps an existing tcell.Screen, e.g. a simulation screen
func NewTcellScreen(s tcell.Screen) *Tcell {
	return &Tcell{
		screen:    s,
		interrupt: raiseInterrupt,
	}
}

// Init initializes the screen, hides the cursor and starts the key watcher
func (t *Tcell) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.active.Store(true)

	go t.watchKeys()
	return nil
}

// watchKeys forwards Ctrl-C; PollEvent returns nil once the screen is finalized
func (t *Tcell) watchKeys() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isCtrlC(key) {
			t.interrupt()
			return
		}
	}
}

// isCtrlC accepts both encodings: the control key itself and 'c' with the Ctrl modifier
func isCtrlC(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

// Present repaints every cell and shows the result in one update
func (t *Tcell) Present(f *render.Frame) error {
	if !t.active.Load() {
		return nil
	}
	t.screen.Clear()
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x, g := range row {
			t.screen.SetContent(x, y, rune(g), nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()
	return nil
}

// Restore finalizes the screen, which shows the cursor and leaves raw mode
func (t *Tcell) Restore() {
	if t.active.CompareAndSwap(true, false) {
		t.screen.ShowCursor(0, 0)
		t.screen.Fini()
	}
}
