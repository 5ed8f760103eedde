package artist

// Cell is one unit of the output grid: a character and, in color mode, the
// averaged color of the source block it covers. Cells have no identity beyond
// their position in a [Grid]
type Cell struct {
	Character Character
	// Foreground is the zero Color when color mode is off
	Foreground Color
}

// HasColor reports whether the cell carries a color
func (c Cell) HasColor() bool {
	return c.Foreground.IsSet()
}

// renderCell combines a character with the block color. The color is passed
// through unmodified
func renderCell(ch Character, avg Color, color bool) Cell {
	if !color {
		return Cell{Character: ch}
	}
	return Cell{
		Character:  ch,
		Foreground: avg,
	}
}
