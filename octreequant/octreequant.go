// Package octreequant reduces opaque RGB images to a small palette, so they
// can be encoded as SIXEL. Colors are bucketed into an octree keyed by the
// bits of their channels; the deepest buckets are merged until the tree has
// few enough leaves, and each leaf's mean color becomes a palette entry.
package octreequant

import (
	"image"
	"image/color"
)

const maxDepth = 8

type node struct {
	r, g, b  uint64
	n        uint64
	leaf     bool
	index    int
	children [8]*node
}

func (n *node) mean() color.RGBA {
	return color.RGBA{
		R: uint8(n.r / n.n),
		G: uint8(n.g / n.n),
		B: uint8(n.b / n.n),
		A: 0xFF,
	}
}

// childIndex picks one of eight children from bit (7-level) of each channel
func childIndex(r, g, b uint8, level int) int {
	shift := 7 - level
	return int((r>>shift)&1)<<2 | int((g>>shift)&1)<<1 | int((b>>shift)&1)
}

// Quantizer accumulates colors and builds a palette from them. It is not safe
// for concurrent use
type Quantizer struct {
	root *node
	// reducible holds the interior nodes of each level, merged deepest
	// first
	reducible [maxDepth][]*node
	leaves    int
	palette   color.Palette
}

// New returns an empty Quantizer
func New() *Quantizer {
	q := &Quantizer{}
	q.root = q.newNode(0)
	return q
}

func (q *Quantizer) newNode(level int) *node {
	n := &node{}
	if level >= maxDepth {
		n.leaf = true
		q.leaves += 1
		return n
	}
	q.reducible[level] = append(q.reducible[level], n)
	return n
}

// Add records one pixel
func (q *Quantizer) Add(r, g, b uint8) {
	n := q.root
	for level := 0; !n.leaf; level += 1 {
		i := childIndex(r, g, b, level)
		if n.children[i] == nil {
			n.children[i] = q.newNode(level + 1)
		}
		n = n.children[i]
	}
	n.r += uint64(r)
	n.g += uint64(g)
	n.b += uint64(b)
	n.n += 1
}

// reduce merges the children of one interior node of the deepest level that
// still has any
func (q *Quantizer) reduce() bool {
	for level := maxDepth - 1; level >= 0; level -= 1 {
		nodes := q.reducible[level]
		if len(nodes) == 0 {
			continue
		}
		n := nodes[len(nodes)-1]
		q.reducible[level] = nodes[:len(nodes)-1]
		for i, c := range n.children {
			if c == nil {
				continue
			}
			n.r += c.r
			n.g += c.g
			n.b += c.b
			n.n += c.n
			n.children[i] = nil
			q.leaves -= 1
		}
		n.leaf = true
		q.leaves += 1
		return true
	}
	return false
}

// Palette merges buckets until at most max remain and returns their mean
// colors. It must be called after all colors are added; the result is cached
func (q *Quantizer) Palette(max int) color.Palette {
	if q.palette != nil {
		return q.palette
	}
	if max < 1 {
		max = 1
	}
	for q.leaves > max {
		if !q.reduce() {
			break
		}
	}
	q.palette = make(color.Palette, 0, q.leaves)
	q.assign(q.root)
	if len(q.palette) == 0 {
		q.palette = append(q.palette, color.RGBA{A: 0xFF})
	}
	return q.palette
}

func (q *Quantizer) assign(n *node) {
	if n.leaf {
		if n.n == 0 {
			return
		}
		n.index = len(q.palette)
		q.palette = append(q.palette, n.mean())
		return
	}
	for _, c := range n.children {
		if c != nil {
			q.assign(c)
		}
	}
}

// Index returns the palette index for a color. Colors that were never added
// get the nearest palette entry
func (q *Quantizer) Index(r, g, b uint8) int {
	n := q.root
	for level := 0; n != nil && !n.leaf; level += 1 {
		n = n.children[childIndex(r, g, b, level)]
	}
	if n != nil && n.n > 0 {
		return n.index
	}
	return q.palette.Index(color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

// Paletted quantizes img and returns a paletted image with up to colors
// palette entries. Alpha is ignored
func Paletted(img image.Image, colors int) *image.Paletted {
	b := img.Bounds()
	q := New()
	for y := b.Min.Y; y < b.Max.Y; y += 1 {
		for x := b.Min.X; x < b.Max.X; x += 1 {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			q.Add(c.R, c.G, c.B)
		}
	}
	out := image.NewPaletted(b, q.Palette(colors))
	for y := b.Min.Y; y < b.Max.Y; y += 1 {
		for x := b.Min.X; x < b.Max.X; x += 1 {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetColorIndex(x, y, uint8(q.Index(c.R, c.G, c.B)))
		}
	}
	return out
}
