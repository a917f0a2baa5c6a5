package sketch

// Option configures a Graphics during creation.
//
// Example:
//
//	g := sketch.NewGraphics(canvas, 800, 600,
//		sketch.WithMatrixStackDepth(64),
//		sketch.WithFont(text.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Graphics creation.
type options struct {
	matrixDepth    int
	vertexCapacity int
	warn           func(string)
	font           Font
	smooth         bool
}

// defaultOptions returns the default Graphics options.
func defaultOptions() options {
	return options{
		matrixDepth:    MatrixStackDepth,
		vertexCapacity: DefaultVertexCapacity,
		smooth:         true,
	}
}

// WithMatrixStackDepth sets how many pushMatrix calls may be nested.
// Values below 1 keep the default of MatrixStackDepth.
func WithMatrixStackDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.matrixDepth = n
		}
	}
}

// WithVertexCapacity sets the initial vertex buffer capacity.
func WithVertexCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.vertexCapacity = n
		}
	}
}

// WithWarningHandler registers fn to receive each distinct warning message
// in addition to the logger. Hosts use it to surface warnings in a console.
func WithWarningHandler(fn func(msg string)) Option {
	return func(o *options) {
		o.warn = fn
	}
}

// WithFont sets the initial text font.
func WithFont(f Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithSmooth sets the initial anti-aliasing state.
func WithSmooth(enabled bool) Option {
	return func(o *options) {
		o.smooth = enabled
	}
}
