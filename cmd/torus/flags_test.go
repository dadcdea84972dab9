package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/a-rossetti/spinning-torus/config"
	"github.com/a-rossetti/spinning-torus/terminal"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if o.backend != terminal.BackendANSI {
		t.Errorf("Expected ansi backend, got %q", o.backend)
	}
	if len(o.set) != 0 {
		t.Errorf("Expected no explicit flags, got %v", o.set)
	}

	s := o.apply(config.Default(), 0, 0)
	if s != config.Default() {
		t.Errorf("Expected settings untouched, got %+v", s)
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	o, err := parseFlags([]string{"-width", "100", "-delay", "10ms", "-frames", "5"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	base := config.Default()
	base.Render.Height = 30 // from a config file
	s := o.apply(base, 0, 0)

	if s.Render.Width != 100 {
		t.Errorf("Expected width 100, got %d", s.Render.Width)
	}
	if s.Render.Height != 30 {
		t.Errorf("Expected config height 30 kept, got %d", s.Render.Height)
	}
	if s.Animation.FrameDelay != 10*time.Millisecond {
		t.Errorf("Expected 10ms, got %s", s.Animation.FrameDelay)
	}
	if s.Animation.MaxFrames != 5 {
		t.Errorf("Expected 5 frames, got %d", s.Animation.MaxFrames)
	}
}

func TestFitUsesTerminalSize(t *testing.T) {
	o, err := parseFlags([]string{"-fit"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	s := o.apply(config.Default(), 132, 43)
	if s.Render.Width != 132 || s.Render.Height != 42 {
		t.Errorf("Expected 132x42, got %dx%d", s.Render.Width, s.Render.Height)
	}

	// Unknown size keeps the configured frame
	s = o.apply(config.Default(), 0, 0)
	if s.Render.Width != 80 || s.Render.Height != 40 {
		t.Errorf("Expected 80x40, got %dx%d", s.Render.Width, s.Render.Height)
	}
}

func TestExplicitSizeBeatsFit(t *testing.T) {
	o, err := parseFlags([]string{"-fit", "-height", "20"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	s := o.apply(config.Default(), 132, 43)
	if s.Render.Width != 132 || s.Render.Height != 20 {
		t.Errorf("Expected 132x20, got %dx%d", s.Render.Width, s.Render.Height)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	if _, err := parseFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}
	if _, err := parseFlags([]string{"-width", "wide"}, io.Discard); err == nil {
		t.Error("Expected error for non-numeric width")
	}
	if _, err := parseFlags([]string{"-nope"}, io.Discard); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	if code := run([]string{"-width", "0"}); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if code := run([]string{"-backend", "sixel", "-frames", "1"}); code != 1 {
		t.Errorf("Expected exit code 1 for unknown backend, got %d", code)
	}
	if code := run([]string{"-bogus"}); code != 2 {
		t.Errorf("Expected exit code 2 for bad flag, got %d", code)
	}
}
