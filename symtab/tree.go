package symtab

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/ardnew/scopetab/log"
)

// Tree is the history of every scope entered, plus a cursor designating the
// active scope.
//
// The zero value is not usable; create trees with [New].
type Tree struct {
	roots  []*Scope
	cursor *Scope // non-owning; nil when no scope is active

	nextID  int
	buckets int
	stride  int64
	prune   bool
	logger  log.Logger
}

// New returns an empty tree with no active scope.
func New(opts ...Option) *Tree {
	t := &Tree{
		nextID:  DefaultFirstID,
		buckets: DefaultBuckets,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// EnterScope creates a scope nested in the active scope and makes it active.
// With no active scope the new scope becomes an additional root.
func (t *Tree) EnterScope() *Scope {
	s := newScope(t.nextID, t.cursor, t.buckets)
	t.nextID++

	if t.cursor == nil {
		t.roots = append(t.roots, s)
	} else {
		t.cursor.children = append(t.cursor.children, s)
	}

	t.cursor = s

	t.logger.Trace("scope enter", scopeAttrs(s)...)

	return s
}

// ExitScope makes the parent of the active scope active. Exiting a root
// leaves no scope active. The exited scope keeps its bindings and stays in
// the tree unless [WithPruneOnExit] is set.
//
// With no active scope ExitScope returns [ErrNoActiveScope] and does
// nothing else.
func (t *Tree) ExitScope() error {
	s := t.cursor
	if s == nil {
		t.logger.Trace("scope exit", slog.Bool("active", false))

		return ErrNoActiveScope.With(slog.String("op", "exit"))
	}

	t.cursor = s.parent

	if t.prune {
		if s.parent == nil {
			t.roots = slices.DeleteFunc(t.roots, func(r *Scope) bool { return r == s })
		} else {
			s.parent.detach(s)
		}
	}

	t.logger.Trace("scope exit", append(scopeAttrs(s), slog.Bool("pruned", t.prune))...)

	return nil
}

// Assign binds name in the active scope.
//
// A name not yet declared in the active scope gets a new binding with the
// given value and nature, plus the type and address supplied by opts.
// Assigning a name already declared there replaces only its value; the
// nature, type, and address given now are ignored.
//
// With no active scope Assign returns [ErrNoActiveScope] and changes
// nothing.
func (t *Tree) Assign(
	name string,
	value int64,
	nature string,
	opts ...AssignOption,
) error {
	s := t.cursor
	if s == nil {
		return ErrNoActiveScope.With(
			slog.String("op", "assign"),
			slog.String("name", name),
		)
	}

	b := Binding{Name: name, Nature: nature, Value: value}
	for _, opt := range opts {
		opt(&b)
	}

	if b.Address == 0 && t.stride != 0 {
		b.Address = int64(s.id)*t.stride + int64(s.table.Len()+1)
	}

	added := s.table.Insert(b)

	t.logger.Trace("binding assign",
		slog.Int("scope", s.id),
		slog.Any("binding", b),
		slog.Bool("added", added),
	)

	return nil
}

// Lookup resolves name from the active scope outward and returns the first
// binding found with the id of its scope. It reports false when no scope is
// active or no enclosing scope declares name.
func (t *Tree) Lookup(name string) (Resolved, bool) {
	for s := t.cursor; s != nil; s = s.parent {
		if b, ok := s.table.Find(name); ok {
			t.logger.Trace("binding lookup",
				slog.String("name", name),
				slog.Int("scope", s.id),
			)

			return Resolved{Binding: b, ScopeID: s.id}, true
		}
	}

	t.logger.Trace("binding lookup", slog.String("name", name), slog.Bool("found", false))

	return Resolved{}, false
}

// Visible returns every name that [Tree.Lookup] would resolve from the
// active scope, mapped to its result.
func (t *Tree) Visible() map[string]Resolved {
	visible := make(map[string]Resolved)

	for s := t.cursor; s != nil; s = s.parent {
		for b := range s.table.All() {
			if _, shadowed := visible[b.Name]; !shadowed {
				visible[b.Name] = Resolved{Binding: b, ScopeID: s.id}
			}
		}
	}

	return visible
}

// Current returns the active scope, or nil if no scope is active.
func (t *Tree) Current() *Scope { return t.cursor }

// Depth returns the number of scopes on the active chain: 0 with no active
// scope, 1 when a root is active, and so on.
func (t *Tree) Depth() int {
	if t.cursor == nil {
		return 0
	}

	return t.cursor.Depth() + 1
}

// Roots returns the root scopes in the order they were entered.
// The returned slice is a copy.
func (t *Tree) Roots() []*Scope { return slices.Clone(t.roots) }

// All returns a pre-order iterator over every scope in the tree with its
// depth. Roots are visited in order, and children in the order entered.
func (t *Tree) All() iter.Seq2[int, *Scope] {
	return func(yield func(int, *Scope) bool) {
		var walk func(s *Scope, depth int) bool

		walk = func(s *Scope, depth int) bool {
			if !yield(depth, s) {
				return false
			}

			for _, c := range s.children {
				if !walk(c, depth+1) {
					return false
				}
			}

			return true
		}

		for _, r := range t.roots {
			if !walk(r, 0) {
				return
			}
		}
	}
}

// Len returns the number of scopes in the tree.
func (t *Tree) Len() int {
	n := 0
	for range t.All() {
		n++
	}

	return n
}

// Scope returns the scope with the given id, if the tree still holds it.
func (t *Tree) Scope(id int) (*Scope, bool) {
	for _, s := range t.All() {
		if s.id == id {
			return s, true
		}
	}

	return nil, false
}

func scopeAttrs(s *Scope) []slog.Attr {
	attrs := []slog.Attr{slog.Int("id", s.id)}

	if pid, ok := s.ParentID(); ok {
		attrs = append(attrs, slog.Int("parent", pid))
	}

	return append(attrs, slog.Int("depth", s.Depth()))
}
