package sketch

// Options holds the rendering configuration handed to a Surface
// implementation at construction. It replaces any process-wide
// rendering state: two surfaces with different options can coexist.
type Options struct {
	// Antialias enables anti-aliased rasterization on backends that
	// support it. Recording and vector backends ignore it.
	Antialias bool

	// DPI is the resolution used to convert font point sizes to
	// pixels. 96 is the CSS reference resolution.
	DPI float64
}

// Option configures Options during creation.
type Option func(*Options)

// DefaultOptions returns the default rendering configuration.
func DefaultOptions() Options {
	return Options{
		Antialias: true,
		DPI:       96,
	}
}

// WithAntialias sets whether rendering is anti-aliased.
func WithAntialias(enabled bool) Option {
	return func(o *Options) {
		o.Antialias = enabled
	}
}

// WithDPI sets the resolution for font size conversion.
func WithDPI(dpi float64) Option {
	return func(o *Options) {
		if dpi > 0 {
			o.DPI = dpi
		}
	}
}

// NewOptions builds an Options from the default configuration and the
// given overrides.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
