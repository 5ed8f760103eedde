package artist

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/mattn/go-sixel"
	"golang.org/x/image/draw"

	"github.com/asciiartist/artist/octreequant"
)

// sixelColors leaves room in the 256 color sixel palette for the terminal
const sixelColors = 254

// EncodeSixel writes the cell colors of the grid as a SIXEL image in which
// every cell becomes a cellW x cellH block. Characters are not drawn. The
// grid must have been rendered in color mode
func (g *Grid) EncodeSixel(w io.Writer, cellW int, cellH int) error {
	if cellW < 1 || cellH < 1 {
		return configError("sixel", "cell-size", fmt.Sprintf("%dx%d", cellW, cellH), "must be at least 1x1")
	}
	mosaic := image.NewNRGBA(image.Rect(0, 0, g.cols, g.rows))
	for i, cell := range g.cells {
		if !cell.HasColor() {
			return configError("sixel", "color", false, "mosaic output needs a grid rendered with color")
		}
		r, gr, b := cell.Foreground.RGB()
		mosaic.SetNRGBA(i%g.cols, i/g.cols, color.NRGBA{R: r, G: gr, B: b, A: 0xFF})
	}

	dst := image.NewNRGBA(image.Rect(0, 0, g.cols*cellW, g.rows*cellH))
	draw.NearestNeighbor.Scale(dst, dst.Rect, mosaic, mosaic.Bounds(), draw.Src, nil)

	paletted := octreequant.Paletted(dst, sixelColors)
	if err := sixel.NewEncoder(w).Encode(paletted); err != nil {
		return fmt.Errorf("encoding sixel: %w", err)
	}
	return nil
}
