package main

import (
	"flag"
	"io"
	"time"

	"github.com/a-rossetti/spinning-torus/config"
	"github.com/a-rossetti/spinning-torus/terminal"
)

// options are the command-line settings; explicit flags override the config file
type options struct {
	configPath string
	backend    string
	fit        bool
	debug      bool

	width  int
	height int
	frames int
	delay  time.Duration

	// Names of flags given on the command line
	set map[string]bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	defaults := config.Default()
	o := options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.backend, "backend", terminal.BackendANSI, "Output backend: ansi, tcell")
	fs.BoolVar(&o.fit, "fit", false, "Size the frame to the terminal at startup")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.IntVar(&o.width, "width", defaults.Render.Width, "Frame width in columns")
	fs.IntVar(&o.height, "height", defaults.Render.Height, "Frame height in rows")
	fs.IntVar(&o.frames, "frames", 0, "Stop after N frames (0 = run until interrupted)")
	fs.DurationVar(&o.delay, "delay", defaults.Animation.FrameDelay, "Sleep between frames")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overlays fitted terminal size (when -fit found one) and then explicit flags on s
// termW/termH of 0 mean the terminal size is unknown
func (o options) apply(s config.Settings, termW, termH int) config.Settings {
	if o.fit && termW > 0 && termH > 1 {
		s.Render.Width = termW
		// Last row stays free: the newline after the final row would scroll the screen
		s.Render.Height = termH - 1
	}
	if o.set["width"] {
		s.Render.Width = o.width
	}
	if o.set["height"] {
		s.Render.Height = o.height
	}
	if o.set["frames"] {
		s.Animation.MaxFrames = o.frames
	}
	if o.set["delay"] {
		s.Animation.FrameDelay = o.delay
	}
	return s
}
