//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris,!zos

package termsize

import (
	"os"

	"golang.org/x/term"
)

// Get asks the terminal behind f for its size. Pixel sizes are not available
// on this platform
func Get(f *os.File) (Size, error) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return Size{}, err
	}
	return Size{
		Cols: cols,
		Rows: rows,
	}, nil
}
