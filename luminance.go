package artist

// Luminance returns the perceptual brightness of c in [0,1], weighting the
// channels per ITU-R BT.601. The weights are summed in thousandths so that
// white is exactly 1 and black exactly 0. An unset color is black
func Luminance(c Color) float64 {
	r, g, b := c.RGB()
	y := 299*int(r) + 587*int(g) + 114*int(b)
	return float64(y) / (1000 * 255)
}
