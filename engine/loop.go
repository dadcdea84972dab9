package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/a-rossetti/spinning-torus/render"
	"github.com/a-rossetti/spinning-torus/vmath"
)

// State of the frame loop
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Orientation is the only state carried between frames: rotation about Y (A) and about Z (B)
type Orientation struct {
	A, B float64
}

// Advance returns o moved by (da, db), wrapped into [0, 2π)
func (o Orientation) Advance(da, db float64) Orientation {
	return Orientation{
		A: vmath.WrapAngle(o.A + da),
		B: vmath.WrapAngle(o.B + db),
	}
}

// Renderer produces the frame for an orientation
type Renderer interface {
	Render(a, b float64) *render.Frame
}

// Presenter paints a frame
type Presenter interface {
	Present(f *render.Frame) error
}

// Loop drives render → present → advance → sleep until stopped
// Single goroutine; nothing here is shared with the signal trap
type Loop struct {
	cfg       Config
	renderer  Renderer
	presenter Presenter

	orient Orientation
	state  State
	frames int
}

// NewLoop creates a loop starting at cfg's start orientation
func NewLoop(cfg Config, r Renderer, p Presenter) *Loop {
	return &Loop{
		cfg:       cfg,
		renderer:  r,
		presenter: p,
		orient:    Orientation{A: cfg.StartA, B: cfg.StartB},
	}
}

// Orientation returns the orientation the next frame will render with
func (l *Loop) Orientation() Orientation { return l.orient }

// Frames returns the number of frames presented so far
func (l *Loop) Frames() int { return l.frames }

// State returns the loop state
func (l *Loop) State() State { return l.state }

// Tick renders and presents one frame, then advances the orientation
func (l *Loop) Tick() error {
	f := l.renderer.Render(l.orient.A, l.orient.B)
	if err := l.presenter.Present(f); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}
	l.frames++
	l.orient = l.orient.Advance(l.cfg.DeltaA, l.cfg.DeltaB)
	return nil
}

// Run ticks until ctx is cancelled or MaxFrames frames were presented (0 = unlimited)
// Returns nil on either stop condition; only a presenter failure is an error
func (l *Loop) Run(ctx context.Context) error {
	l.state = StateRunning
	defer func() { l.state = StateStopped }()

	log.Printf("loop: running delay=%s dA=%g dB=%g max_frames=%d", l.cfg.FrameDelay, l.cfg.DeltaA, l.cfg.DeltaB, l.cfg.MaxFrames)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		if l.cfg.MaxFrames > 0 && l.frames >= l.cfg.MaxFrames {
			log.Printf("loop: frame limit reached after %d frames", l.frames)
			return nil
		}
		if err := ctx.Err(); err != nil {
			log.Printf("loop: stopped after %d frames: %v", l.frames, err)
			return nil
		}

		if err := l.Tick(); err != nil {
			return err
		}

		// Last frame stays on screen without the trailing delay
		if l.cfg.MaxFrames > 0 && l.frames >= l.cfg.MaxFrames {
			continue
		}

		timer.Reset(l.cfg.FrameDelay)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}
	}
}
