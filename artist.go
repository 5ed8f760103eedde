// Package artist turns raster images into grids of text characters that
// approximate the image in a monospaced terminal, optionally keeping a color
// per character.
//
// A conversion is a single pass: the source [PixelGrid] is block-averaged down
// to the character grid, each averaged color is mapped to a character by its
// luminance, and the characters (plus colors, in color mode) are assembled
// into a [Grid]. Use [Grid.Encode] to write it to a terminal.
package artist

import (
	"image"
	"io"

	"golang.org/x/exp/slog"
)

// Converter runs the pipeline for a fixed RenderConfig. It holds no state
// between calls and is safe for concurrent use
type Converter struct {
	cfg     RenderConfig
	workers int
	log     *slog.Logger
}

// New validates cfg and returns a Converter for it
func New(cfg RenderConfig, opts Options) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{
		cfg:     cfg,
		workers: opts.workers(),
		log:     log,
	}, nil
}

// Config returns the configuration the converter was built with
func (c *Converter) Config() RenderConfig {
	return c.cfg
}

// Convert renders src. Identical sources produce identical grids regardless
// of the number of workers
func (c *Converter) Convert(src PixelGrid) (*Grid, error) {
	if src.Empty() {
		return nil, &EmptySourceError{Stage: "source", Width: src.width, Height: src.height}
	}
	cols, rows, err := Dimensions(src.width, src.height, c.cfg)
	if err != nil {
		return nil, err
	}
	c.log.Debug("resampling",
		"source", []int{src.width, src.height},
		"grid", []int{cols, rows},
		"workers", c.workers,
	)
	samples := resample(src, cols, rows, c.workers)

	cs := c.cfg.Charset
	cells := make([]Cell, len(samples))
	forEachRow(rows, c.workers, func(r int) {
		for i := r * cols; i < (r+1)*cols; i += 1 {
			avg := samples[i]
			cells[i] = renderCell(cs.Select(Luminance(avg)), avg, c.cfg.Color)
		}
	})

	g, err := assemble(rows, cols, cells, cs.MaxWidth())
	if err != nil {
		c.log.Error("assembling grid", "error", err)
		return nil, err
	}
	return g, nil
}

// ConvertImage adapts img with [PixelGridFromImage] and converts it
func (c *Converter) ConvertImage(img image.Image) (*Grid, error) {
	src, err := PixelGridFromImage(img)
	if err != nil {
		return nil, err
	}
	return c.Convert(src)
}

// Convert renders src with cfg using default [Options]
func Convert(src PixelGrid, cfg RenderConfig) (*Grid, error) {
	c, err := New(cfg, Options{})
	if err != nil {
		return nil, err
	}
	return c.Convert(src)
}
