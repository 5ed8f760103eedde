package artist_test

import (
	"fmt"

	"github.com/asciiartist/artist"
)

func ExampleCell() {
	// A 1x1 red image
	src, err := artist.NewPixelGrid(1, 1, []uint8{0xFF, 0, 0})
	if err != nil {
		panic(err)
	}
	cfg := artist.DefaultConfig()
	cfg.Width = 1
	cfg.AspectRatioCompensation = 1
	grid, err := artist.Convert(src, cfg)
	if err != nil {
		panic(err)
	}

	cell := grid.At(0, 0)
	fmt.Printf("%q %v\n", cell.Character.Grapheme, cell.Foreground)
	// Output: "*" rgb(255,0,0)
}
