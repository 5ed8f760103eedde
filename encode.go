package artist

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var sgrReset = termenv.CSI + termenv.ResetSeq + "m"

// ParseProfile parses a color profile name: "truecolor" (or "24bit"), "256",
// "16" (or "ansi") and "none" (or "ascii")
func ParseProfile(s string) (termenv.Profile, error) {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "none", "ascii":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, configError("config", "profile", s, "want truecolor, 256, 16 or none")
}

// Encode writes the grid to w, one line per row. Colored cells get a
// foreground SGR sequence degraded to profile; a sequence is only written
// when it differs from the previous cell's, and every row that set a color
// ends with a reset. termenv.Ascii, or a grid without colors, produces the
// same text as [Grid.String]
func (g *Grid) Encode(w io.Writer, profile termenv.Profile) error {
	buf := rowBuffers.Get()
	defer func() {
		buf.Reset()
		rowBuffers.Put(buf)
	}()

	seqs := make(map[Color]string)
	for r := 0; r < g.rows; r += 1 {
		buf.Reset()
		last := ""
		for _, cell := range g.cells[r*g.cols : (r+1)*g.cols] {
			if cell.HasColor() && profile != termenv.Ascii {
				seq, ok := seqs[cell.Foreground]
				if !ok {
					seq = foregroundSequence(profile, cell.Foreground)
					seqs[cell.Foreground] = seq
				}
				if seq != last {
					buf.WriteString(seq)
					last = seq
				}
			}
			writePadded(buf, cell.Character, g.width)
		}
		if last != "" {
			buf.WriteString(sgrReset)
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
	}
	return nil
}

func foregroundSequence(profile termenv.Profile, c Color) string {
	tc := profile.Color(c.Hex())
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
