package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/scopetab/symtab"
)

// Columns of [Table].
var columns = []string{
	"ScopeID", "ParentID", "Name", "Nature", "Type", "Address", "Value",
}

const (
	noParent  = "None"
	noBinding = "---"
	unset     = "-"
)

// Table writes one row per binding of tree, with scopes in pre-order and
// bindings in table order. A scope with no bindings gets a single row of
// placeholders so that it still appears.
func Table(w io.Writer, tree *symtab.Tree, opts ...Option) error {
	cfg := makeConfig(opts...)

	t := table.New().
		Border(cfg.border).
		Headers(columns...).
		Rows(rows(tree)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cfg.header
			}

			return cfg.cell
		})

	_, err := fmt.Fprintln(w, t.String())

	return err
}

func rows(tree *symtab.Tree) [][]string {
	var rows [][]string

	for _, s := range tree.All() {
		id := strconv.Itoa(s.ID())

		parent := noParent
		if pid, ok := s.ParentID(); ok {
			parent = strconv.Itoa(pid)
		}

		bindings := s.Bindings()
		if len(bindings) == 0 {
			rows = append(rows, []string{
				id, parent, noBinding, noBinding, noBinding, noBinding, noBinding,
			})

			continue
		}

		for _, b := range bindings {
			rows = append(rows, []string{
				id,
				parent,
				b.Name,
				b.Nature,
				orUnset(b.Type),
				formatAddress(b.Address),
				strconv.FormatInt(b.Value, 10),
			})
		}
	}

	return rows
}

func orUnset(s string) string {
	if s == "" {
		return unset
	}

	return s
}

func formatAddress(addr int64) string {
	if addr == 0 {
		return unset
	}

	return strconv.FormatInt(addr, 10)
}
