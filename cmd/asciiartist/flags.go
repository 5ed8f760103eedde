package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"github.com/asciiartist/artist"
	"github.com/asciiartist/artist/internal/termsize"
)

const (
	defaultCellW = 10
	defaultCellH = 20
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			EnvVars: []string{"ASCIIARTIST_INPUT"},
			Usage:   "path to the image to convert (.png, .jpg, .gif, .bmp, .tiff, .webp)",
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			EnvVars: []string{"ASCIIARTIST_WIDTH"},
			Value:   artist.DefaultWidth,
			Usage:   "output width in characters",
		},
		&cli.StringFlag{
			Name:    "charset",
			Aliases: []string{"c"},
			EnvVars: []string{"ASCIIARTIST_CHARSET"},
			Value:   artist.DefaultCharset,
			Usage:   "characters ordered from brightest to darkest",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"C"},
			EnvVars: []string{"ASCIIARTIST_COLOR"},
			Value:   true,
			Usage:   "color each character with the image colors; --color=false for black and white",
		},
		&cli.Float64Flag{
			Name:    "aspect-ratio-compensation",
			Aliases: []string{"A"},
			EnvVars: []string{"ASCIIARTIST_ASPECT"},
			Value:   artist.DefaultAspectRatioCompensation,
			Usage:   "row compensation for tall terminal cells; decrease if the image looks stretched, increase if squashed",
		},
		&cli.StringFlag{
			Name:    "profile",
			EnvVars: []string{"ASCIIARTIST_PROFILE"},
			Value:   "auto",
			Usage:   "color profile: auto, truecolor, 256, 16 or none",
		},
		&cli.BoolFlag{
			Name:    "fit",
			EnvVars: []string{"ASCIIARTIST_FIT"},
			Usage:   "use the terminal width instead of --width",
		},
		&cli.BoolFlag{
			Name:    "auto-aspect",
			EnvVars: []string{"ASCIIARTIST_AUTO_ASPECT"},
			Usage:   "derive the compensation factor from the terminal's cell size in pixels",
		},
		&cli.StringFlag{
			Name:    "width-method",
			EnvVars: []string{"ASCIIARTIST_WIDTH_METHOD"},
			Value:   artist.WidthUnicode.String(),
			Usage:   "how charset character widths are measured: unicode, wcwidth or nozwj",
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"ASCIIARTIST_WORKERS"},
			Usage:   "goroutines used for resampling (default GOMAXPROCS)",
		},
		&cli.BoolFlag{
			Name:    "sixel",
			EnvVars: []string{"ASCIIARTIST_SIXEL"},
			Usage:   "write the cell colors as a sixel mosaic instead of characters",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write to a file instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug details",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log warnings and errors",
		},
	}
}

// settings is everything run needs besides the input path
type settings struct {
	config  artist.RenderConfig
	profile termenv.Profile
	workers int
	sixel   bool
	cellW   int
	cellH   int
}

// loadSettings turns flags into a validated RenderConfig. Terminal queries
// that fail fall back to the flag values
func loadSettings(c *cli.Context, log *slog.Logger) (settings, error) {
	s := settings{
		workers: c.Int("workers"),
		sixel:   c.Bool("sixel"),
		cellW:   defaultCellW,
		cellH:   defaultCellH,
	}

	method, err := artist.ParseWidthMethod(c.String("width-method"))
	if err != nil {
		return s, err
	}
	charset, err := artist.NewCharacterSet(c.String("charset"), method)
	if err != nil {
		return s, err
	}
	s.config = artist.RenderConfig{
		Width:                   c.Int("width"),
		AspectRatioCompensation: c.Float64("aspect-ratio-compensation"),
		Charset:                 charset,
		Color:                   c.Bool("color") || s.sixel,
	}

	if c.Bool("fit") || c.Bool("auto-aspect") || s.sixel {
		size, err := termsize.Get(os.Stdout)
		if err != nil {
			log.Warn("couldn't get terminal size", "error", err)
		} else {
			applyTerminal(c, &s, size, log)
		}
	}

	piped := c.String("output") == "" && !termsize.IsTerminal(os.Stdout)
	s.profile, err = resolveProfile(c.String("profile"), s.config.Color, piped)
	if err != nil {
		return s, err
	}
	if err := s.config.Validate(); err != nil {
		return s, err
	}
	log.Debug("settings",
		"width", s.config.Width,
		"aspect", s.config.AspectRatioCompensation,
		"charset", s.config.Charset.String(),
		"color", s.config.Color,
		"profile", profileName(s.profile),
	)
	return s, nil
}

func applyTerminal(c *cli.Context, s *settings, size termsize.Size, log *slog.Logger) {
	if c.Bool("fit") && size.Cols > 0 {
		// The widest charset character decides how many fit on a line
		w := s.config.Charset.MaxWidth()
		if w < 1 {
			w = 1
		}
		s.config.Width = size.Cols / w
	}
	if c.Bool("auto-aspect") {
		if aspect, ok := size.CellAspect(); ok {
			s.config.AspectRatioCompensation = aspect
		} else {
			log.Warn("terminal did not report its pixel size, keeping compensation factor",
				"aspect", s.config.AspectRatioCompensation)
		}
	}
	if cw, ch, ok := size.CellPixels(); ok && cw > 0 && ch > 0 {
		s.cellW, s.cellH = cw, ch
	}
}

// resolveProfile picks the escape sequences to write. auto follows the
// environment when writing to a terminal and falls back to plain text when
// stdout is redirected; a file given with --output keeps the environment's
// profile
func resolveProfile(name string, color bool, piped bool) (termenv.Profile, error) {
	if !color {
		return termenv.Ascii, nil
	}
	if name == "" || name == "auto" {
		if piped {
			return termenv.Ascii, nil
		}
		return termenv.EnvColorProfile(), nil
	}
	return artist.ParseProfile(name)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	case termenv.Ascii:
		return "none"
	}
	return fmt.Sprintf("profile(%d)", p)
}
