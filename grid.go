package artist

import "strings"

// Grid is the finished character grid. It is never modified after the
// pipeline returns it
type Grid struct {
	rows  int
	cols  int
	cells []Cell
	// width is the column width of a cell, the widest character of the
	// charset the grid was rendered with
	width int
}

// assemble lays out cells row-major. A cell count that disagrees with the
// computed shape is a pipeline defect
func assemble(rows int, cols int, cells []Cell, width int) (*Grid, error) {
	if rows < 1 || cols < 1 || len(cells) != rows*cols {
		return nil, &ShapeMismatchError{Rows: rows, Cols: cols, Cells: len(cells)}
	}
	if width < 1 {
		width = 1
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
		width: width,
	}, nil
}

// Rows is the number of character rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols is the number of character columns
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell at row, col. It panics if either is out of range
func (g *Grid) At(row int, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic("artist: grid index out of range")
	}
	return g.cells[row*g.cols+col]
}

// Row returns a copy of one row
func (g *Grid) Row(row int) []Cell {
	line := make([]Cell, g.cols)
	copy(line, g.cells[row*g.cols:(row+1)*g.cols])
	return line
}

// String renders the grid without color, one line per row, each terminated by
// a newline
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols*g.width + 1) * g.rows)
	for r := 0; r < g.rows; r += 1 {
		for _, cell := range g.cells[r*g.cols : (r+1)*g.cols] {
			writePadded(&sb, cell.Character, g.width)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type stringWriter interface {
	WriteString(string) (int, error)
}

// writePadded writes the grapheme followed by enough spaces to fill width
// columns
func writePadded(w stringWriter, ch Character, width int) {
	w.WriteString(ch.Grapheme)
	for i := ch.Width; i < width; i += 1 {
		w.WriteString(" ")
	}
}
