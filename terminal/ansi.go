package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiSGR0 = []byte("\x1b[0m")

	// Erase display, then home; the frame is repainted from row 1, col 1
	csiClear = []byte("\x1b[2J\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	newline = []byte{'\n'}
)
