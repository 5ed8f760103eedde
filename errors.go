package artist

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every [ConfigurationError]
	ErrConfiguration = errors.New("invalid render configuration")
	// ErrEmptySource is matched by every [EmptySourceError]
	ErrEmptySource = errors.New("empty pixel source")
	// ErrShapeMismatch is matched by every [ShapeMismatchError]. It signals a
	// defect in the pipeline, never bad input
	ErrShapeMismatch = errors.New("output grid shape mismatch")
)

// ConfigurationError reports a RenderConfig field, or a pixel buffer, that
// cannot be rendered
type ConfigurationError struct {
	// Stage is the pipeline stage that rejected the value ("config",
	// "resample", "pixels", "sixel")
	Stage  string
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ErrConfiguration.Error()
	}
	return fmt.Sprintf("%s: %s: %s = %v: %s", ErrConfiguration, e.Stage, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// EmptySourceError reports a pixel source with no pixels
type EmptySourceError struct {
	Stage  string
	Width  int
	Height int
}

func (e *EmptySourceError) Error() string {
	if e == nil {
		return ErrEmptySource.Error()
	}
	return fmt.Sprintf("%s: %s: %dx%d", ErrEmptySource, e.Stage, e.Width, e.Height)
}

func (e *EmptySourceError) Unwrap() error {
	return ErrEmptySource
}

// ShapeMismatchError reports that the number of rendered cells differs from
// the grid dimensions computed by the resampler
type ShapeMismatchError struct {
	Rows  int
	Cols  int
	Cells int
}

func (e *ShapeMismatchError) Error() string {
	if e == nil {
		return ErrShapeMismatch.Error()
	}
	return fmt.Sprintf("%s: %d cells for a %dx%d grid", ErrShapeMismatch, e.Cells, e.Cols, e.Rows)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func configError(stage, field string, value any, reason string) error {
	return &ConfigurationError{Stage: stage, Field: field, Value: value, Reason: reason}
}
