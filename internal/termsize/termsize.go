// Package termsize reports the geometry of the terminal the output goes to.
package termsize

import (
	"os"

	"golang.org/x/term"
)

// Size is the terminal size in cells and, when the terminal reports it, in
// pixels
type Size struct {
	Cols   int
	Rows   int
	XPixel int
	YPixel int
}

// CellAspect returns the width of one cell divided by its height. ok is false
// when the terminal did not report its pixel size
func (s Size) CellAspect() (aspect float64, ok bool) {
	if s.Cols <= 0 || s.Rows <= 0 || s.XPixel <= 0 || s.YPixel <= 0 {
		return 0, false
	}
	cellW := float64(s.XPixel) / float64(s.Cols)
	cellH := float64(s.YPixel) / float64(s.Rows)
	return cellW / cellH, true
}

// CellPixels returns the size of one cell in pixels. ok is false when the
// terminal did not report its pixel size
func (s Size) CellPixels() (w int, h int, ok bool) {
	if s.Cols <= 0 || s.Rows <= 0 || s.XPixel <= 0 || s.YPixel <= 0 {
		return 0, 0, false
	}
	return s.XPixel / s.Cols, s.YPixel / s.Rows, true
}

// IsTerminal reports whether f is a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
