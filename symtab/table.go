package symtab

import "iter"

// DefaultBuckets is the bucket count of a [Table] created with a
// non-positive size.
const DefaultBuckets = 100

// Table maps names to bindings using a fixed number of buckets with
// separate chaining.
//
// The bucket count never changes after construction; there is no resizing.
// Heavy collision degrades lookups to a linear scan of one bucket, and the
// iteration order of [Table.All] depends on the bucket count.
type Table struct {
	buckets [][]Binding
	size    int
}

// NewTable returns an empty table with n buckets, or [DefaultBuckets] if
// n <= 0.
func NewTable(n int) *Table {
	if n <= 0 {
		n = DefaultBuckets
	}

	return &Table{buckets: make([][]Binding, n)}
}

// Hash returns the bucket index of name in a table of n buckets.
//
// Every code point c of name, in order, updates h = (h*31 + c) mod n,
// starting with h = 0. The result depends on character order, so
// anagrams generally land in different buckets.
func Hash(name string, n int) int {
	h := 0
	for _, c := range name {
		h = (h*31 + int(c)) % n
	}

	return h
}

// Buckets returns the fixed number of buckets.
func (t *Table) Buckets() int { return len(t.buckets) }

// Len returns the number of bindings stored.
func (t *Table) Len() int { return t.size }

// Hash returns the bucket index of name in t.
func (t *Table) Hash(name string) int { return Hash(name, len(t.buckets)) }

// BucketLen returns the number of bindings chained in bucket i, or 0 if i is
// out of range.
func (t *Table) BucketLen(i int) int {
	if i < 0 || i >= len(t.buckets) {
		return 0
	}

	return len(t.buckets[i])
}

// Insert adds b to the table and reports whether it was new.
//
// If a binding named b.Name already exists, only its Value is replaced with
// b.Value; Nature, Type, and Address keep their original values.
func (t *Table) Insert(b Binding) (added bool) {
	i := t.Hash(b.Name)

	for j := range t.buckets[i] {
		if t.buckets[i][j].Name == b.Name {
			t.buckets[i][j].Value = b.Value

			return false
		}
	}

	t.buckets[i] = append(t.buckets[i], b)
	t.size++

	return true
}

// Find returns the binding named name and true, or the zero Binding and
// false if there is none.
func (t *Table) Find(name string) (Binding, bool) {
	for _, b := range t.buckets[t.Hash(name)] {
		if b.Name == name {
			return b, true
		}
	}

	return Binding{}, false
}

// All returns an iterator over copies of all bindings in bucket order, and
// in insertion order within each bucket. The order is not sorted by name.
func (t *Table) All() iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		for _, bucket := range t.buckets {
			for _, b := range bucket {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Entries returns all bindings in the order of [Table.All].
func (t *Table) Entries() []Binding {
	entries := make([]Binding, 0, t.size)
	for b := range t.All() {
		entries = append(entries, b)
	}

	return entries
}
