package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"github.com/asciiartist/artist"
	"github.com/asciiartist/artist/internal/imagefile"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp(stdout io.Writer, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "asciiartist",
		Usage:     "convert an image into colored or black-and-white ASCII art",
		Version:   "1.0.0",
		ArgsUsage: "[FILE]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags(),
		// main reports errors itself
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func newLogger(c *cli.Context, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		level = slog.LevelWarn
	case c.Bool("verbose"):
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
}

func run(c *cli.Context, stdout io.Writer, stderr io.Writer) error {
	log := newLogger(c, stderr)

	path := c.String("input")
	if path == "" {
		path = c.Args().First()
	}
	if path == "" {
		if err := cli.ShowAppHelp(c); err != nil {
			return cli.Exit(err, 1)
		}
		return cli.Exit("missing input image", 1)
	}

	info, err := os.Stat(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if info.IsDir() {
		return cli.Exit(fmt.Sprintf("%s is a directory", path), 1)
	}
	if ext := filepath.Ext(path); !imagefile.IsSupportedExt(ext) {
		log.Warn("unrecognized extension, sniffing format", "ext", ext, "supported", imagefile.SupportedExtsList())
	}

	settings, err := loadSettings(c, log)
	if err != nil {
		return cli.Exit(err, 1)
	}

	log.Info("loading image", "path", path)
	img, format, err := imagefile.Open(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	b := img.Bounds()
	log.Info("image dimensions", "width", b.Dx(), "height", b.Dy(), "format", format)

	start := time.Now()
	conv, err := artist.New(settings.config, artist.Options{
		Logger:  log,
		Workers: settings.workers,
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	grid, err := conv.ConvertImage(img)
	if err != nil {
		return cli.Exit(err, 1)
	}

	err = writeOutput(c.String("output"), stdout, func(w io.Writer) error {
		if settings.sixel {
			return grid.EncodeSixel(w, settings.cellW, settings.cellH)
		}
		return grid.Encode(w, settings.profile)
	})
	if err != nil {
		return cli.Exit(err, 1)
	}

	log.Info("conversion complete",
		"grid", fmt.Sprintf("%dx%d", grid.Cols(), grid.Rows()),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)
	return nil
}

// writeOutput runs write against a buffered stdout, or against the file name
// when one is given. A failure to close the file is reported like a failed
// write
func writeOutput(name string, stdout io.Writer, write func(io.Writer) error) (err error) {
	out := stdout
	if name != "" {
		f, ferr := os.Create(name)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = cerr
			}
		}()
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
