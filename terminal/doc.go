// Package terminal paints rendered frames to a terminal and restores it on exit.
//
// Features:
//   - Direct ANSI output: one buffered write per frame (clear, home, rows)
//   - Alternate tcell backend for terminals where plain output tears
//   - SIGINT/SIGTERM trap that re-shows the cursor and exits with the signal number
//   - One-shot terminal size query for fitting the frame at startup
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
