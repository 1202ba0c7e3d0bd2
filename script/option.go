package script

import "github.com/ardnew/scopetab/log"

// DefaultNature is the nature of bindings assigned without one.
const DefaultNature = "local"

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithStrict makes [Interpreter.Run] stop at the first line that fails.
// By default the failure is reported and the run continues.
func WithStrict(strict bool) Option {
	return func(in *Interpreter) {
		in.strict = strict
	}
}

// WithDefaultNature sets the nature used by assign commands that omit it.
// An empty nature selects [DefaultNature].
func WithDefaultNature(nature string) Option {
	return func(in *Interpreter) {
		if nature == "" {
			nature = DefaultNature
		}

		in.nature = nature
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}
