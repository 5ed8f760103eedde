package artist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(chars string, colors ...Color) []Cell {
	cs := MustCharacterSet(chars)
	out := make([]Cell, cs.Len())
	for i := range out {
		out[i].Character = cs.At(i)
		if i < len(colors) {
			out[i].Foreground = colors[i]
		}
	}
	return out
}

func TestAssemble(t *testing.T) {
	g, err := assemble(2, 3, cells("abcdef"), 1)
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef\n", g.String())
	assert.Equal(t, "e", g.At(1, 1).Character.Grapheme)

	row := g.Row(0)
	row[0].Character.Grapheme = "z"
	assert.Equal(t, "a", g.At(0, 0).Character.Grapheme)

	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
}

func TestAssembleShapeMismatch(t *testing.T) {
	_, err := assemble(2, 3, cells("abcde"), 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	var serr *ShapeMismatchError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, ShapeMismatchError{Rows: 2, Cols: 3, Cells: 5}, *serr)

	_, err = assemble(0, 0, nil, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestGridPadding(t *testing.T) {
	// Cells are padded to the widest character so rows line up
	g, err := assemble(1, 3, cells("a田b"), 2)
	require.NoError(t, err)
	assert.Equal(t, "a 田b \n", g.String())
}
