package symtab

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/scopetab/log"
)

type lookupCase struct {
	name  string
	value int64
	scope int
}

func assertLookup(t *testing.T, tree *Tree, want lookupCase) {
	t.Helper()

	got, ok := tree.Lookup(want.name)
	if !ok {
		t.Fatalf("Lookup(%q) missed, want value %d in scope %d", want.name, want.value, want.scope)
	}

	if got.Value != want.value || got.ScopeID != want.scope {
		t.Errorf("Lookup(%q) = (%d, scope %d), want (%d, scope %d)",
			want.name, got.Value, got.ScopeID, want.value, want.scope)
	}
}

func mustAssign(t *testing.T, tree *Tree, name string, value int64, nature string, opts ...AssignOption) {
	t.Helper()

	if err := tree.Assign(name, value, nature, opts...); err != nil {
		t.Fatalf("Assign(%q) error = %v", name, err)
	}
}

func TestTree_Scenario(t *testing.T) {
	tree := New()

	tree.EnterScope()
	mustAssign(t, tree, "a", 1, "local")
	mustAssign(t, tree, "b", 2, "local")

	tree.EnterScope()
	mustAssign(t, tree, "a", 3, "para")
	mustAssign(t, tree, "c", 4, "local")
	assertLookup(t, tree, lookupCase{"b", 2, 1})

	tree.EnterScope()
	mustAssign(t, tree, "c", 5, "local")
	assertLookup(t, tree, lookupCase{"c", 5, 3})
	assertLookup(t, tree, lookupCase{"a", 3, 2})

	if err := tree.ExitScope(); err != nil {
		t.Fatal(err)
	}

	assertLookup(t, tree, lookupCase{"c", 4, 2})

	if err := tree.ExitScope(); err != nil {
		t.Fatal(err)
	}

	assertLookup(t, tree, lookupCase{"a", 1, 1})

	if r, _ := tree.Lookup("a"); r.Nature != "local" {
		t.Errorf("Lookup(a).Nature = %q, want local", r.Nature)
	}

	if _, ok := tree.Lookup("c"); ok {
		t.Error("Lookup(c) in scope 1 should miss")
	}
}

func TestTree_Persistence(t *testing.T) {
	tree := New()

	tree.EnterScope()
	mustAssign(t, tree, "x", 1, "local")
	tree.EnterScope()
	mustAssign(t, tree, "y", 2, "local")
	tree.EnterScope()
	mustAssign(t, tree, "z", 3, "local")

	for range 3 {
		if err := tree.ExitScope(); err != nil {
			t.Fatal(err)
		}
	}

	if tree.Current() != nil {
		t.Fatal("expected no active scope")
	}

	roots := tree.Roots()
	if len(roots) != 1 || roots[0].ID() != 1 {
		t.Fatalf("Roots() = %v", roots)
	}

	s2 := roots[0].Children()
	if len(s2) != 1 || s2[0].ID() != 2 {
		t.Fatalf("children of 1 = %v", s2)
	}

	s3 := s2[0].Children()
	if len(s3) != 1 || s3[0].ID() != 3 {
		t.Fatalf("children of 2 = %v", s3)
	}

	if b, ok := s3[0].Lookup("z"); !ok || b.Value != 3 {
		t.Errorf("scope 3 lost z: %+v, %v", b, ok)
	}

	if got := tree.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	if pid, ok := s3[0].ParentID(); !ok || pid != 2 {
		t.Errorf("ParentID() = %d, %v", pid, ok)
	}

	if _, ok := roots[0].ParentID(); ok || !roots[0].IsRoot() {
		t.Error("scope 1 should be a root")
	}
}

func TestTree_ExitWithoutScope(t *testing.T) {
	tree := New()

	err := tree.ExitScope()
	if !errors.Is(err, ErrNoActiveScope) {
		t.Fatalf("ExitScope() error = %v, want ErrNoActiveScope", err)
	}

	if tree.Depth() != 0 || tree.Len() != 0 || tree.Current() != nil {
		t.Error("tree changed after failed exit")
	}

	// Still usable afterwards.
	s := tree.EnterScope()
	if s.ID() != DefaultFirstID {
		t.Errorf("first id = %d, want %d", s.ID(), DefaultFirstID)
	}
}

func TestTree_AssignWithoutScope(t *testing.T) {
	tree := New()

	err := tree.Assign("x", 1, "local")
	if !errors.Is(err, ErrNoActiveScope) {
		t.Fatalf("Assign() error = %v, want ErrNoActiveScope", err)
	}

	if !strings.Contains(err.Error(), "no active scope") {
		t.Errorf("error message = %q", err.Error())
	}

	if _, ok := tree.Lookup("x"); ok {
		t.Error("failed Assign created a binding")
	}
}

func TestTree_LookupMiss(t *testing.T) {
	tree := New()

	if _, ok := tree.Lookup("x"); ok {
		t.Error("Lookup with no scope should miss")
	}

	tree.EnterScope()

	if _, ok := tree.Lookup("x"); ok {
		t.Error("Lookup of undeclared name should miss")
	}
}

func TestTree_ReassignKeepsAttributes(t *testing.T) {
	tree := New()
	tree.EnterScope()

	mustAssign(t, tree, "v", 1, "local", WithType("int"), WithAddress(1001))
	mustAssign(t, tree, "v", 7, "para", WithType("float"), WithAddress(5))

	r, _ := tree.Lookup("v")

	want := Binding{Name: "v", Nature: "local", Type: "int", Value: 7, Address: 1001}
	if r.Binding != want {
		t.Errorf("Lookup(v) = %+v, want %+v", r.Binding, want)
	}

	if got := tree.Current().Len(); got != 1 {
		t.Errorf("scope Len() = %d, want 1", got)
	}
}

func TestTree_Depth(t *testing.T) {
	tree := New()

	steps := []struct {
		enter bool
		want  int
	}{
		{true, 1},
		{true, 2},
		{false, 1},
		{true, 2},
		{false, 1},
		{false, 0},
		{false, 0},
		{true, 1},
	}

	for i, step := range steps {
		if step.enter {
			tree.EnterScope()
		} else {
			_ = tree.ExitScope()
		}

		if got := tree.Depth(); got != step.want {
			t.Errorf("step %d: Depth() = %d, want %d", i, got, step.want)
		}
	}
}

func TestTree_MultipleRoots(t *testing.T) {
	tree := New()

	tree.EnterScope()
	mustAssign(t, tree, "x", 1, "local")
	_ = tree.ExitScope()

	tree.EnterScope()

	if _, ok := tree.Lookup("x"); ok {
		t.Error("second root should not see bindings of the first")
	}

	roots := tree.Roots()
	if len(roots) != 2 || roots[0].ID() != 1 || roots[1].ID() != 2 {
		t.Errorf("Roots() ids = %v", roots)
	}
}

func TestTree_IDsAreUnique(t *testing.T) {
	tree := New(WithFirstID(10))

	tree.EnterScope()
	tree.EnterScope()
	_ = tree.ExitScope()
	tree.EnterScope()
	_ = tree.ExitScope()
	_ = tree.ExitScope()
	tree.EnterScope()

	var ids []int
	for _, s := range tree.All() {
		ids = append(ids, s.ID())
	}

	want := []int{10, 11, 12, 13}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}

	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)

			break
		}
	}
}

func TestTree_AllDepth(t *testing.T) {
	tree := New()

	tree.EnterScope()
	tree.EnterScope()
	tree.EnterScope()
	_ = tree.ExitScope()
	_ = tree.ExitScope()
	tree.EnterScope()

	want := map[int]int{1: 0, 2: 1, 3: 2, 4: 1}
	for depth, s := range tree.All() {
		if want[s.ID()] != depth {
			t.Errorf("scope %d at depth %d, want %d", s.ID(), depth, want[s.ID()])
		}

		if s.Depth() != depth {
			t.Errorf("scope %d Depth() = %d, want %d", s.ID(), s.Depth(), depth)
		}
	}
}

func TestTree_Scope(t *testing.T) {
	tree := New()

	tree.EnterScope()
	tree.EnterScope()
	mustAssign(t, tree, "q", 9, "local")

	s, ok := tree.Scope(2)
	if !ok {
		t.Fatal("Scope(2) not found")
	}

	if b, ok := s.Lookup("q"); !ok || b.Value != 9 {
		t.Errorf("Scope(2).Lookup(q) = %+v, %v", b, ok)
	}

	if _, ok := tree.Scope(42); ok {
		t.Error("Scope(42) should not exist")
	}
}

func TestTree_Visible(t *testing.T) {
	tree := New()

	tree.EnterScope()
	mustAssign(t, tree, "a", 1, "local")
	mustAssign(t, tree, "b", 2, "local")
	tree.EnterScope()
	mustAssign(t, tree, "a", 3, "para")

	visible := tree.Visible()

	if len(visible) != 2 {
		t.Fatalf("Visible() = %v", visible)
	}

	if r := visible["a"]; r.Value != 3 || r.ScopeID != 2 {
		t.Errorf("visible a = %+v", r)
	}

	if r := visible["b"]; r.Value != 2 || r.ScopeID != 1 {
		t.Errorf("visible b = %+v", r)
	}

	if got := New().Visible(); len(got) != 0 {
		t.Errorf("Visible() with no scope = %v", got)
	}
}

func TestTree_PruneOnExit(t *testing.T) {
	tree := New(WithPruneOnExit(true))

	tree.EnterScope()
	tree.EnterScope()
	mustAssign(t, tree, "x", 1, "local")
	_ = tree.ExitScope()

	if got := tree.Current().Children(); len(got) != 0 {
		t.Errorf("children after pruned exit = %v", got)
	}

	_ = tree.ExitScope()

	if got := tree.Roots(); len(got) != 0 {
		t.Errorf("roots after pruned exit = %v", got)
	}

	// Ids keep counting after pruning.
	if s := tree.EnterScope(); s.ID() != 3 {
		t.Errorf("next id = %d, want 3", s.ID())
	}
}

func TestTree_AddressStride(t *testing.T) {
	tree := New(WithAddressStride(1000))

	tree.EnterScope()
	mustAssign(t, tree, "a", 1, "local")
	mustAssign(t, tree, "b", 2, "local")
	tree.EnterScope()
	mustAssign(t, tree, "a", 3, "local")
	mustAssign(t, tree, "c", 4, "local", WithAddress(7))

	tests := []struct {
		scope int
		name  string
		want  int64
	}{
		{1, "a", 1001},
		{1, "b", 1002},
		{2, "a", 2001},
		{2, "c", 7},
	}

	for _, tt := range tests {
		s, _ := tree.Scope(tt.scope)

		b, _ := s.Lookup(tt.name)
		if b.Address != tt.want {
			t.Errorf("scope %d %s address = %d, want %d", tt.scope, tt.name, b.Address, tt.want)
		}
	}
}

func TestTree_Buckets(t *testing.T) {
	tree := New(WithBuckets(7))

	if got := tree.EnterScope().Table().Buckets(); got != 7 {
		t.Errorf("Buckets() = %d, want 7", got)
	}

	if got := New(WithBuckets(-1)).EnterScope().Table().Buckets(); got != DefaultBuckets {
		t.Errorf("Buckets() = %d, want %d", got, DefaultBuckets)
	}
}

func TestTree_Logger(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace))

	tree := New(WithLogger(logger))

	tree.EnterScope()
	mustAssign(t, tree, "x", 1, "local")
	tree.Lookup("x")
	_ = tree.ExitScope()
	_ = tree.ExitScope()

	out := buf.String()
	for _, msg := range []string{"scope enter", "binding assign", "binding lookup", "scope exit"} {
		if !strings.Contains(out, `"msg":"`+msg+`"`) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}

	if !strings.Contains(out, `"active":false`) {
		t.Errorf("log output missing failed exit:\n%s", out)
	}
}

func TestTree_ZeroLoggerIsSilent(t *testing.T) {
	tree := New()

	tree.EnterScope()
	mustAssign(t, tree, "x", 1, "local")

	if _, ok := tree.Lookup("x"); !ok {
		t.Error("Lookup(x) missed")
	}
}
