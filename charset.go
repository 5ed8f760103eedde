package artist

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultCharset is ordered brightest to darkest
const DefaultCharset = " .:-=+*#%@"

// Character is a single extended grapheme cluster and its display width
type Character struct {
	Grapheme string
	Width    int
}

// CharacterSet is an ordered, immutable lookup table from brightness to
// character. Index 0 is used for the brightest cells, the last index for the
// darkest. The zero value is empty and is rejected by [RenderConfig.Validate]
type CharacterSet struct {
	chars    []Character
	maxWidth int
}

// NewCharacterSet splits s into grapheme clusters, keeping their order. A set
// of one character is valid and renders every cell with it
func NewCharacterSet(s string, method WidthMethod) (CharacterSet, error) {
	chars := make([]Character, 0, len(s))
	maxWidth := 0
	state := -1
	cluster := ""
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := gwidth(cluster, method)
		if w > maxWidth {
			maxWidth = w
		}
		chars = append(chars, Character{Grapheme: cluster, Width: w})
	}
	if len(chars) == 0 {
		return CharacterSet{}, configError("config", "charset", "", "at least one character is required")
	}
	return CharacterSet{
		chars:    chars,
		maxWidth: maxWidth,
	}, nil
}

// MustCharacterSet is like NewCharacterSet with WidthUnicode but panics on an
// empty string. It is meant for package level defaults
func MustCharacterSet(s string) CharacterSet {
	cs, err := NewCharacterSet(s, WidthUnicode)
	if err != nil {
		panic(err)
	}
	return cs
}

// Len is the number of characters in the set
func (cs CharacterSet) Len() int {
	return len(cs.chars)
}

// MaxWidth is the display width of the widest character in the set
func (cs CharacterSet) MaxWidth() int {
	return cs.maxWidth
}

// At returns the character at i, clamped to the set. It returns the zero
// Character for an empty set
func (cs CharacterSet) At(i int) Character {
	if len(cs.chars) == 0 {
		return Character{}
	}
	return cs.chars[clampInt(i, 0, len(cs.chars)-1)]
}

// Index maps a brightness in [0,1] to a character index. Brightness 1 maps to
// 0 and brightness 0 maps to Len()-1. Out of range values are clamped and NaN
// is treated as black, so every float64 yields a valid index
func (cs CharacterSet) Index(brightness float64) int {
	n := len(cs.chars)
	if n <= 1 {
		return 0
	}
	switch {
	case math.IsNaN(brightness), brightness < 0:
		brightness = 0
	case brightness > 1:
		brightness = 1
	}
	i := int(math.Floor((1 - brightness) * float64(n-1)))
	return clampInt(i, 0, n-1)
}

// Select returns the character for a brightness
func (cs CharacterSet) Select(brightness float64) Character {
	return cs.At(cs.Index(brightness))
}

func (cs CharacterSet) String() string {
	var sb strings.Builder
	for _, c := range cs.chars {
		sb.WriteString(c.Grapheme)
	}
	return sb.String()
}
