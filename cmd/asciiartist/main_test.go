package main

import (
	"bytes"
	"errors"
	"io"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeImage writes a 4x4 png, white on top and black below
func writeImage(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y += 1 {
		for x := 0; x < 4; x += 1 {
			c := color.NRGBA{A: 0xFF}
			if y < 2 {
				c = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "split.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeImage(t)
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{
		"asciiartist", "-w", "4", "-A", "1", "-c", " #", "--profile", "none", path,
	})
	require.NoError(t, err, stderr.String())
	assert.Equal(t, "    \n    \n####\n####\n", stdout.String())
	assert.Contains(t, stderr.String(), "conversion complete")
}

func TestRunColor(t *testing.T) {
	path := writeImage(t)
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{
		"asciiartist", "-q", "-w", "2", "-A", "1", "-c", " #", "--profile", "truecolor", "-i", path,
	})
	require.NoError(t, err, stderr.String())
	assert.Equal(t,
		"\x1b[38;2;255;255;255m  \x1b[0m\n"+
			"\x1b[38;2;0;0;0m##\x1b[0m\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunOutputFile(t *testing.T) {
	path := writeImage(t)
	out := filepath.Join(t.TempDir(), "art.txt")
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{
		"asciiartist", "-q", "-w", "4", "-A", "0.5", "-c", " #", "--color=false", "-o", out, path,
	})
	require.NoError(t, err, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "    \n####\n", string(data))
}

func TestRunErrors(t *testing.T) {
	path := writeImage(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "nope.png")}, msg: "no such file"},
		{name: "directory", args: []string{t.TempDir()}, msg: "is a directory"},
		{name: "zero width", args: []string{"-w", "0", path}, msg: "width"},
		{name: "empty charset", args: []string{"-c", "", path}, msg: "charset"},
		{name: "bad profile", args: []string{"--profile", "cmyk", path}, msg: "profile"},
		{name: "bad width method", args: []string{"--width-method", "ucs2", path}, msg: "width-method"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := newApp(&stdout, &stderr).Run(append([]string{"asciiartist", "-q"}, test.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestResolveProfile(t *testing.T) {
	p, err := resolveProfile("truecolor", false, false)
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, p)

	p, err = resolveProfile("auto", true, true)
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, p)

	p, err = resolveProfile("256", true, true)
	require.NoError(t, err)
	assert.Equal(t, termenv.ANSI256, p)
}

func TestRunNoInput(t *testing.T) {
	t.Setenv("ASCIIARTIST_INPUT", "")
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{"asciiartist", "-q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing input image")
	// Help goes to stdout
	assert.Contains(t, stdout.String(), "asciiartist")
}

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		err := writeOutput("", &stdout, func(w io.Writer) error {
			_, err := io.WriteString(w, "art\n")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "art\n", stdout.String())
	})

	t.Run("file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "art.txt")
		var stdout bytes.Buffer
		err := writeOutput(name, &stdout, func(w io.Writer) error {
			_, err := io.WriteString(w, "art\n")
			return err
		})
		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, "art\n", string(data))
	})

	t.Run("encode error", func(t *testing.T) {
		broken := errors.New("broken")
		name := filepath.Join(t.TempDir(), "art.txt")
		err := writeOutput(name, io.Discard, func(io.Writer) error {
			return broken
		})
		assert.ErrorIs(t, err, broken)
	})

	t.Run("full device", func(t *testing.T) {
		if _, err := os.Stat("/dev/full"); err != nil {
			t.Skip("no /dev/full")
		}
		err := writeOutput("/dev/full", io.Discard, func(w io.Writer) error {
			_, err := io.WriteString(w, "art\n")
			return err
		})
		assert.Error(t, err)
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := writeOutput(filepath.Join(t.TempDir(), "missing", "art.txt"), io.Discard, func(io.Writer) error {
			return nil
		})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
