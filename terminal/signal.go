package terminal

import (
	"log"
	"os"
	"os/signal"
	"sync"
)

// Restorer is the cleanup Trap runs before exiting
type Restorer interface {
	Restore()
}

// Trap installs the SIGINT/SIGTERM handler
// On delivery it calls r.Restore and then exit with the signal number (SIGINT → 2, SIGTERM → 15)
// Nothing runs between Restore and exit: the render loop may be anywhere mid-frame
// The returned stop uninstalls the handler; safe to call more than once
func Trap(r Restorer, exit func(code int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, trapSignals...)

	stopCh := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			code := signalCode(sig)
			log.Printf("signal: %s, exit %d", signalName(sig), code)
			// Restore then exit, nothing in between
			r.Restore()
			exit(code)
		case <-stopCh:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stopCh)
		})
	}
}
