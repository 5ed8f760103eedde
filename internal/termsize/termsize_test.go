package termsize

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAspect(t *testing.T) {
	s := Size{Cols: 80, Rows: 24, XPixel: 800, YPixel: 480}
	aspect, ok := s.CellAspect()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, aspect, 1e-9)

	w, h, ok := s.CellPixels()
	assert.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)

	_, ok = Size{Cols: 80, Rows: 24}.CellAspect()
	assert.False(t, ok)
	_, _, ok = Size{}.CellPixels()
	assert.False(t, ok)
}

func TestGetNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
	_, err = Get(f)
	assert.Error(t, err)
}
