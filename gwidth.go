package artist

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how the display width of a charset grapheme is measured.
// Terminals disagree on emoji and combining sequences, so pick the one that
// matches the terminal the output is meant for
type WidthMethod int

const (
	// WidthUnicode measures graphemes per Unicode UAX #11 and #29
	WidthUnicode WidthMethod = iota
	// WidthWcwidth sums the wcwidth of each codepoint, like most older
	// terminals do
	WidthWcwidth
	// WidthNoZWJ measures like WidthUnicode but ignores zero width joiners
	WidthNoZWJ
)

func (m WidthMethod) String() string {
	switch m {
	case WidthWcwidth:
		return "wcwidth"
	case WidthNoZWJ:
		return "nozwj"
	default:
		return "unicode"
	}
}

// ParseWidthMethod parses the names returned by WidthMethod.String
func ParseWidthMethod(s string) (WidthMethod, error) {
	switch strings.ToLower(s) {
	case "", "unicode":
		return WidthUnicode, nil
	case "wcwidth":
		return WidthWcwidth, nil
	case "nozwj":
		return WidthNoZWJ, nil
	}
	return WidthUnicode, configError("config", "width-method", s, "want unicode, wcwidth or nozwj")
}

func gwidth(s string, method WidthMethod) int {
	switch method {
	case WidthNoZWJ:
		s = strings.ReplaceAll(s, "\u200D", "")
		return uniseg.StringWidth(s)
	case WidthWcwidth:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	default:
		return uniseg.StringWidth(s)
	}
}
