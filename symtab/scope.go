package symtab

import "slices"

// Scope is one node of a [Tree]. It owns a [Table] of bindings and the
// scopes entered while it was active.
//
// The methods of Scope only read; bindings are added through [Tree.Assign].
type Scope struct {
	id       int
	parent   *Scope
	children []*Scope
	table    *Table
}

func newScope(id int, parent *Scope, buckets int) *Scope {
	return &Scope{
		id:     id,
		parent: parent,
		table:  NewTable(buckets),
	}
}

// ID returns the identifier assigned when the scope was entered.
func (s *Scope) ID() int { return s.id }

// Parent returns the enclosing scope, or nil for a root.
func (s *Scope) Parent() *Scope { return s.parent }

// ParentID returns the id of the enclosing scope and true, or 0 and false
// for a root.
func (s *Scope) ParentID() (int, bool) {
	if s.parent == nil {
		return 0, false
	}

	return s.parent.id, true
}

// IsRoot reports whether s has no enclosing scope.
func (s *Scope) IsRoot() bool { return s.parent == nil }

// Depth returns the number of enclosing scopes; a root has depth 0.
func (s *Scope) Depth() int {
	d := 0
	for p := s.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// Children returns the nested scopes in the order they were entered.
// The returned slice is a copy.
func (s *Scope) Children() []*Scope { return slices.Clone(s.children) }

// Bindings returns copies of the bindings declared directly in s, in
// [Table.All] order.
func (s *Scope) Bindings() []Binding { return s.table.Entries() }

// Len returns the number of bindings declared directly in s.
func (s *Scope) Len() int { return s.table.Len() }

// Lookup finds name among the bindings declared directly in s. Enclosing
// scopes are not searched.
func (s *Scope) Lookup(name string) (Binding, bool) { return s.table.Find(name) }

// Table returns the table holding the bindings of s, for inspection of its
// bucket layout. Mutating it bypasses the tree.
func (s *Scope) Table() *Table { return s.table }

// detach removes child from s.children.
func (s *Scope) detach(child *Scope) {
	s.children = slices.DeleteFunc(s.children, func(c *Scope) bool {
		return c == child
	})
}
