package artist

import (
	"fmt"
	"math"
	"sync"
)

// MaxCells is the largest grid Dimensions accepts, 4096x4096 cells
const MaxCells = 1 << 24

// Dimensions computes the character grid for a srcW x srcH image. The column
// count is the configured width; the row count follows the source aspect
// ratio scaled by the compensation factor, rounded to nearest. Both are at
// least 1, and grids of more than MaxCells cells are rejected
func Dimensions(srcW int, srcH int, cfg RenderConfig) (cols int, rows int, err error) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, &EmptySourceError{Stage: "resample", Width: srcW, Height: srcH}
	}
	if err := validateFactor("resample", cfg.AspectRatioCompensation); err != nil {
		return 0, 0, err
	}
	cols = cfg.Width
	if cols < 1 {
		cols = 1
	}
	if cols > MaxCells {
		return 0, 0, configError("resample", "width", cols, fmt.Sprintf("more than %d cells", MaxCells))
	}
	r := math.Round(float64(cols) * (float64(srcH) / float64(srcW)) * cfg.AspectRatioCompensation)
	if r < 1 {
		r = 1
	}
	if r*float64(cols) > MaxCells {
		return 0, 0, configError("resample", "aspect-ratio-compensation", cfg.AspectRatioCompensation,
			fmt.Sprintf("%d columns by %.0f rows is more than %d cells", cols, r, MaxCells))
	}
	return cols, int(r), nil
}

// edge returns the source coordinate where cell i of n starts, i*total/n
// rounded to nearest. edge(0) is 0 and edge(n) is total, and neighbouring
// cells share an edge, so the cells cover the source exactly once
func edge(i int, n int, total int) int {
	return (2*i*total + n) / (2 * n)
}

// nearest returns the source coordinate closest to the centre of cell i
func nearest(i int, n int, total int) int {
	return clampInt((2*i+1)*total/(2*n), 0, total-1)
}

// span returns the half-open source interval of cell i. Cells smaller than a
// pixel, which happen when upscaling, collapse to the nearest pixel
func span(i int, n int, total int) (lo int, hi int) {
	lo, hi = edge(i, n, total), edge(i+1, n, total)
	if lo >= hi {
		lo = nearest(i, n, total)
		hi = lo + 1
	}
	return lo, hi
}

// average returns the per channel mean of the source rectangle, rounded to
// nearest
func (p PixelGrid) average(x0 int, x1 int, y0 int, y1 int) Color {
	var r, g, b uint64
	for y := y0; y < y1; y += 1 {
		row := p.pix[(y*p.width+x0)*3 : (y*p.width+x1)*3]
		for i := 0; i < len(row); i += 3 {
			r += uint64(row[i])
			g += uint64(row[i+1])
			b += uint64(row[i+2])
		}
	}
	n := uint64((x1 - x0) * (y1 - y0))
	return RGBColor(
		uint8((r+n/2)/n),
		uint8((g+n/2)/n),
		uint8((b+n/2)/n),
	)
}

// resample block-averages src into a rows x cols grid of colors, row-major.
// Rows are spread over workers; each row writes only its own slots
func resample(src PixelGrid, cols int, rows int, workers int) []Color {
	out := make([]Color, rows*cols)
	xs := make([][2]int, cols)
	for c := range xs {
		xs[c][0], xs[c][1] = span(c, cols, src.width)
	}
	forEachRow(rows, workers, func(r int) {
		y0, y1 := span(r, rows, src.height)
		line := out[r*cols : (r+1)*cols]
		for c, x := range xs {
			line[c] = src.average(x[0], x[1], y0, y1)
		}
	})
	return out
}

// forEachRow calls fn once for every row in [0, rows) using a fixed pool of
// workers and returns after all calls have finished
func forEachRow(rows int, workers int, fn func(row int)) {
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		for r := 0; r < rows; r += 1 {
			fn(r)
		}
		return
	}
	in := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func() {
			defer wg.Done()
			for r := range in {
				fn(r)
			}
		}()
	}
	for r := 0; r < rows; r += 1 {
		in <- r
	}
	close(in)
	wg.Wait()
}
