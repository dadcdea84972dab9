package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/a-rossetti/spinning-torus/config"
	"github.com/a-rossetti/spinning-torus/engine"
	"github.com/a-rossetti/spinning-torus/render"
	"github.com/a-rossetti/spinning-torus/terminal"
)

// Construction points for the screen and renderer; tests replace them
var (
	newScreen   = terminal.New
	newRenderer = newPipeline
	crashOut    = io.Writer(os.Stderr)
)

func newPipeline(cfg render.Config) (engine.Renderer, error) {
	p, err := render.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	var screen terminal.Screen

	// Panic Recovery: ensure the cursor comes back even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Restore()
			}
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(crashOut, "\n\x1b[31mTORUS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	stdoutFd := int(os.Stdout.Fd())
	var termW, termH int
	if opts.fit {
		if termW, termH, err = terminal.Size(stdoutFd); err != nil {
			log.Printf("fit: %v, keeping %dx%d", err, settings.Render.Width, settings.Render.Height)
		}
	}
	settings = opts.apply(settings, termW, termH)

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		return 1
	}

	renderer, err := newRenderer(settings.Render)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build pipeline: %v\n", err)
		return 1
	}
	log.Printf("pipeline: %dx%d r1=%g r2=%g k1=%.3f k2=%g glyphs=%q",
		settings.Render.Width, settings.Render.Height, settings.Render.R1, settings.Render.R2,
		settings.Render.K1(), settings.Render.K2, settings.Render.Glyphs)

	if !terminal.IsTerminal(stdoutFd) {
		log.Printf("stdout is not a terminal, frames are written as plain text")
	}

	screen, err = newScreen(opts.backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Restore()
	log.Printf("screen: backend=%s", opts.backend)

	// Interrupt/terminate: show the cursor, exit with the signal number
	stopTrap := terminal.Trap(screen, os.Exit)
	defer stopTrap()

	loop := engine.NewLoop(settings.Animation, renderer, screen)
	if err := loop.Run(context.Background()); err != nil {
		screen.Restore()
		fmt.Fprintf(os.Stderr, "Render loop failed: %v\n", err)
		return 1
	}
	log.Printf("exit: %d frames, state=%s", loop.Frames(), loop.State())
	return 0
}
