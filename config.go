package artist

import "math"

const (
	// DefaultWidth is the default number of character columns
	DefaultWidth = 120
	// DefaultAspectRatioCompensation squeezes rows for fonts whose cells are
	// about twice as tall as they are wide
	DefaultAspectRatioCompensation = 0.50
)

// RenderConfig describes one conversion. It is read-only once built; the
// pipeline never modifies it
type RenderConfig struct {
	// Width is the number of character columns in the output. Must be at
	// least 1
	Width int
	// AspectRatioCompensation multiplies the number of rows to correct for
	// non-square terminal cells. Decrease it if output looks vertically
	// stretched, increase it if it looks squashed. Must be > 0
	AspectRatioCompensation float64
	// Charset maps brightness to characters, brightest first
	Charset CharacterSet
	// Color attaches the averaged color of each cell to the output
	Color bool
}

// DefaultConfig returns a RenderConfig with width 120, a compensation factor
// of 0.50, the [DefaultCharset] and color enabled
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Width:                   DefaultWidth,
		AspectRatioCompensation: DefaultAspectRatioCompensation,
		Charset:                 MustCharacterSet(DefaultCharset),
		Color:                   true,
	}
}

// Validate returns a [ConfigurationError] naming the first invalid field
func (cfg RenderConfig) Validate() error {
	if cfg.Width < 1 {
		return configError("config", "width", cfg.Width, "must be at least 1")
	}
	if err := validateFactor("config", cfg.AspectRatioCompensation); err != nil {
		return err
	}
	if cfg.Charset.Len() == 0 {
		return configError("config", "charset", cfg.Charset.String(), "at least one character is required")
	}
	return nil
}

func validateFactor(stage string, f float64) error {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return configError(stage, "aspect-ratio-compensation", f, "must be finite")
	case f <= 0:
		return configError(stage, "aspect-ratio-compensation", f, "must be greater than 0")
	}
	return nil
}
