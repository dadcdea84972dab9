package render

import (
	"bytes"
	"io"
	"math"
)

// depthCleared is below any reachable sample depth, so the first sample in a cell always wins
var depthCleared = math.Inf(-1)

// Frame is the per-frame glyph grid with its parallel depth buffer
// Row-major: index = y*Width + x
type Frame struct {
	Width  int
	Height int
	Glyphs []byte
	Depth  []float64
}

// NewFrame allocates a cleared frame
func NewFrame(width, height int) *Frame {
	size := width * height
	f := &Frame{
		Width:  width,
		Height: height,
		Glyphs: make([]byte, size),
		Depth:  make([]float64, size),
	}
	f.Reset()
	return f
}

// Reset fills glyphs with spaces and depth with the cleared sentinel
func (f *Frame) Reset() {
	for i := range f.Glyphs {
		f.Glyphs[i] = ' '
		f.Depth[i] = depthCleared
	}
}

// Plot depth-tests a sample against cell (x, y)
// Out-of-bounds samples and samples not strictly nearer than the stored depth are discarded
// Returns true if the cell was overwritten
func (f *Frame) Plot(x, y int, depth float64, glyph byte) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	idx := y*f.Width + x
	if depth <= f.Depth[idx] {
		return false
	}
	f.Depth[idx] = depth
	f.Glyphs[idx] = glyph
	return true
}

// At returns glyph and depth at (x, y); ok is false out of bounds
func (f *Frame) At(x, y int) (glyph byte, depth float64, ok bool) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0, 0, false
	}
	idx := y*f.Width + x
	return f.Glyphs[idx], f.Depth[idx], true
}

// Row returns the glyphs of row y without copying
func (f *Frame) Row(y int) []byte {
	start := y * f.Width
	return f.Glyphs[start : start+f.Width]
}

// Clone returns a deep copy, used to keep a frame past the next Render
func (f *Frame) Clone() *Frame {
	c := &Frame{
		Width:  f.Width,
		Height: f.Height,
		Glyphs: make([]byte, len(f.Glyphs)),
		Depth:  make([]float64, len(f.Depth)),
	}
	copy(c.Glyphs, f.Glyphs)
	copy(c.Depth, f.Depth)
	return c
}

// Equal reports whether both frames hold the same glyphs
func (f *Frame) Equal(o *Frame) bool {
	return f.Width == o.Width && f.Height == o.Height && bytes.Equal(f.Glyphs, o.Glyphs)
}

// WriteTo writes every row followed by '\n'
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	var total int64
	nl := []byte{'\n'}
	for y := 0; y < f.Height; y++ {
		n, err := w.Write(f.Row(y))
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = w.Write(nl)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the frame as newline-terminated rows
func (f *Frame) String() string {
	var b bytes.Buffer
	b.Grow((f.Width + 1) * f.Height)
	f.WriteTo(&b)
	return b.String()
}
