// options.go: a functional-options bundle of tuning knobs (storage backend,
// k override, Strassen cutoff), matching the teacher package's
// functional-options idiom. No constructor or kernel in this module reads
// an Options value: M4RM and Strassen take k and cutoff as arguments,
// NewMatrix always allocates through mmc, and PLE uses a fixed strip width.
package matrix

// Options carries tuning knobs for the matrix/ops kernels; see the file
// comment for which of them any code reads (none).
type Options struct {
	// UseMMC names whether large block allocations go through the mmc
	// cache. Defaults to true.
	UseMMC bool

	// ForceK names a Gray-code table width for the M4RM/M4RI kernels. Zero
	// means "choose automatically"; M4RM's own automatic choice is
	// round(0.75*ceil(log2(d))) for the smaller dimension d, clamped to
	// [1, gray.MaxKay].
	ForceK int

	// StrassenCutoff names the dimension below which multiplication
	// falls back to M4RM instead of recursing (spec ??4.5). Zero means use
	// the package default.
	StrassenCutoff int
}

// Option mutates an Options value.
type Option func(*Options)

// NewOptions builds an Options from the given functional options, starting
// from the package defaults.
func NewOptions(opts ...Option) *Options {
	o := &Options{UseMMC: true}
	for _, f := range opts {
		f(o)
	}
	return o
}

// WithForceK overrides automatic k selection.
func WithForceK(k int) Option {
	return func(o *Options) { o.ForceK = k }
}

// WithStrassenCutoff overrides the Strassen recursion cutoff.
func WithStrassenCutoff(n int) Option {
	return func(o *Options) { o.StrassenCutoff = n }
}

// WithMMC toggles use of the mmc allocation cache.
func WithMMC(enabled bool) Option {
	return func(o *Options) { o.UseMMC = enabled }
}
