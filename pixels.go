package artist

import (
	"image"
	"image/color"
)

// PixelGrid is an immutable rectangle of RGB samples. It is the only view of
// the source image the pipeline needs; use [PixelGridFromImage] to adapt a
// decoded image.Image
type PixelGrid struct {
	width  int
	height int
	// pix holds 3 bytes per pixel, row-major, top to bottom
	pix []uint8
}

// NewPixelGrid creates a grid from packed RGB data. The slice is copied
func NewPixelGrid(width int, height int, rgb []uint8) (PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return PixelGrid{}, &EmptySourceError{Stage: "pixels", Width: width, Height: height}
	}
	if len(rgb) != width*height*3 {
		return PixelGrid{}, configError("pixels", "rgb", len(rgb), "buffer length must be width*height*3")
	}
	pix := make([]uint8, len(rgb))
	copy(pix, rgb)
	return PixelGrid{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// PixelGridFromImage samples every pixel of img. Alpha is discarded: the
// stored channels of non-premultiplied images are used as-is, so a fully
// transparent *image.NRGBA pixel keeps its RGB value. Premultiplied sources
// are un-premultiplied, and a fully transparent premultiplied pixel has no
// color left and reads as black
func PixelGridFromImage(img image.Image) (PixelGrid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return PixelGrid{}, &EmptySourceError{Stage: "pixels", Width: w, Height: h}
	}
	pix := make([]uint8, 0, w*h*3)
	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y += 1 {
			off := src.PixOffset(b.Min.X, y)
			row := src.Pix[off : off+w*4]
			for x := 0; x < w*4; x += 4 {
				pix = append(pix, row[x], row[x+1], row[x+2])
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y += 1 {
			for x := b.Min.X; x < b.Max.X; x += 1 {
				r, g, bl := toRGB(img.At(x, y))
				pix = append(pix, r, g, bl)
			}
		}
	}
	return PixelGrid{
		width:  w,
		height: h,
		pix:    pix,
	}, nil
}

// toRGB converts any color to 8-bit non-premultiplied channels
func toRGB(c color.Color) (uint8, uint8, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// Width is the number of pixel columns
func (p PixelGrid) Width() int {
	return p.width
}

// Height is the number of pixel rows
func (p PixelGrid) Height() int {
	return p.height
}

// Empty reports whether the grid has no pixels, as the zero PixelGrid does
func (p PixelGrid) Empty() bool {
	return p.width <= 0 || p.height <= 0
}

// At returns the color at x, y. Coordinates are clamped to the grid
func (p PixelGrid) At(x int, y int) Color {
	if p.Empty() {
		return 0
	}
	x = clampInt(x, 0, p.width-1)
	y = clampInt(y, 0, p.height-1)
	off := (y*p.width + x) * 3
	return RGBColor(p.pix[off], p.pix[off+1], p.pix[off+2])
}

func clampInt(v int, lo int, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
