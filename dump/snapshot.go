package dump

import "github.com/ardnew/scopetab/symtab"

// Node is the serializable form of one scope and its descendants.
type Node struct {
	ID       int              `json:"id"       yaml:"id"`
	Parent   *int             `json:"parent"   yaml:"parent"`
	Bindings []symtab.Binding `json:"bindings" yaml:"bindings"`
	Children []Node           `json:"children" yaml:"children"`
}

// Snapshot copies every scope of tree into a slice of root nodes.
// Parent is nil for roots.
func Snapshot(tree *symtab.Tree) []Node {
	roots := tree.Roots()

	nodes := make([]Node, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, makeNode(r))
	}

	return nodes
}

func makeNode(s *symtab.Scope) Node {
	n := Node{
		ID:       s.ID(),
		Bindings: s.Bindings(),
	}

	if pid, ok := s.ParentID(); ok {
		n.Parent = &pid
	}

	children := s.Children()

	n.Children = make([]Node, 0, len(children))
	for _, c := range children {
		n.Children = append(n.Children, makeNode(c))
	}

	return n
}
