package artist

import (
	"runtime"

	"golang.org/x/exp/slog"
)

// Options tune how a [Converter] runs. They never change its output
type Options struct {
	// Logger is an optional slog.Logger that the converter will log to.
	// Logs use the stdlib levels; nothing above Debug is emitted on success
	Logger *slog.Logger
	// Workers is the number of goroutines resampling rows in parallel. The
	// default is GOMAXPROCS; 1 runs everything on the calling goroutine
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
