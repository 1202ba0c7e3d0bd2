package symtab

import "github.com/ardnew/scopetab/log"

// DefaultFirstID is the id given to the first scope of a tree.
const DefaultFirstID = 1

// Option configures a [Tree].
type Option func(*Tree)

// WithBuckets sets the bucket count of the table created for every scope.
// Non-positive values select [DefaultBuckets].
func WithBuckets(n int) Option {
	return func(t *Tree) {
		if n <= 0 {
			n = DefaultBuckets
		}

		t.buckets = n
	}
}

// WithFirstID sets the id given to the first scope entered. Later scopes are
// numbered consecutively from it.
func WithFirstID(id int) Option {
	return func(t *Tree) {
		t.nextID = id
	}
}

// WithPruneOnExit detaches a scope from its parent (or from the roots) when
// it is exited, so its memory can be reclaimed. By default every scope is
// retained for the lifetime of the tree.
func WithPruneOnExit(prune bool) Option {
	return func(t *Tree) {
		t.prune = prune
	}
}

// WithAddressStride assigns a simulated address to every binding created
// without [WithAddress]: id*stride + n, where id is the owning scope's id
// and n counts the bindings of that scope starting at 1. With stride 1000
// the bindings of scope 2 get 2001, 2002, and so on. A stride of 0 (the
// default) leaves such addresses unset.
func WithAddressStride(stride int64) Option {
	return func(t *Tree) {
		t.stride = stride
	}
}

// WithLogger sets the logger used for trace-level diagnostics.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// AssignOption supplies the optional fields of a new [Binding].
type AssignOption func(*Binding)

// WithType sets the type tag of a new binding.
func WithType(typ string) AssignOption {
	return func(b *Binding) {
		b.Type = typ
	}
}

// WithAddress sets the address of a new binding.
func WithAddress(addr int64) AssignOption {
	return func(b *Binding) {
		b.Address = addr
	}
}
