package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/scopetab/symtab"
)

// Outline writes tree as an indented hierarchy. Each scope is labeled with
// its id and followed by its bindings, then by its nested scopes.
func Outline(w io.Writer, t *symtab.Tree, opts ...Option) error {
	cfg := makeConfig(opts...)

	out := tree.New().Enumerator(cfg.enumerator)
	for _, r := range t.Roots() {
		out.Child(outlineScope(cfg, r))
	}

	_, err := fmt.Fprintln(w, out.String())

	return err
}

func outlineScope(cfg config, s *symtab.Scope) *tree.Tree {
	node := tree.Root(cfg.scope.Render(fmt.Sprintf("scope %d", s.ID()))).
		Enumerator(cfg.enumerator)

	for _, b := range s.Bindings() {
		node.Child(formatBinding(b))
	}

	for _, c := range s.Children() {
		node.Child(outlineScope(cfg, c))
	}

	return node
}

// formatBinding renders b as "name = value (nature[, type][, @address])".
func formatBinding(b symtab.Binding) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s = %d (%s", b.Name, b.Value, b.Nature)

	if b.Type != "" {
		fmt.Fprintf(&sb, ", %s", b.Type)
	}

	if b.Address != 0 {
		fmt.Fprintf(&sb, ", @%d", b.Address)
	}

	sb.WriteString(")")

	return sb.String()
}
