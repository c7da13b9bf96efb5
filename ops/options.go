package ops

import "github.com/katalvlaran/tsdag/align"

// config bundles the optional alignment/bootstrap knobs a binary node
// constructor accepts, following the teacher's functional-options idiom
// (builder.BuilderOption) adapted from graph-construction options to
// node-construction options.
type config struct {
	alignment align.Alignment
	initial   *align.Initial
}

// Option configures a binary node constructor's alignment behaviour.
type Option func(*config)

// WithAlignment overrides the default UNION alignment.
func WithAlignment(a align.Alignment) Option {
	return func(c *config) { c.alignment = a }
}

// WithInitial supplies an alignment bootstrap (spec.md §4.4 "initial_values").
func WithInitial(initial *align.Initial) Option {
	return func(c *config) { c.initial = initial }
}

func resolveOptions(opts []Option) config {
	var c config // zero value: UNION, no bootstrap
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
