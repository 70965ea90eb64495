package pictureopt

// Option configures an Optimize call. Use functional options rather
// than a bare struct so new knobs can be added without breaking
// existing call sites.
//
// Example:
//
//	prog, meta, err := pictureopt.Optimize(ctx, rec, pictureopt.WithMaxIterations(32))
type Option func(*options)

// options holds the resolved configuration for one Optimize call.
type options struct {
	maxIterations int
	maxNodes      int
	lenient       bool
}

// defaultOptions returns the options Optimize uses when no Option is
// passed: the saturator's own sane defaults, and the strict (non-legacy)
// front-end.
func defaultOptions() options {
	return options{
		maxIterations: 0, // 0 means defer to egraph.NewRunner's default
		maxNodes:      0,
		lenient:       false,
	}
}

// WithMaxIterations bounds the number of saturation rounds. Zero (the
// default) defers to the saturator's own bound.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMaxNodes bounds the e-graph's node count during saturation. Zero
// (the default) defers to the saturator's own bound. Hitting this bound
// stops saturation early but never fails the run: Optimize still
// extracts and lowers whatever equivalences were found so far.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}

// WithLenient selects the legacy loosely-typed front-end
// (lift.LiftLenient): unrecognized command kinds are skipped and
// recorded in the returned metadata instead of aborting the run.
func WithLenient(lenient bool) Option {
	return func(o *options) {
		o.lenient = lenient
	}
}
