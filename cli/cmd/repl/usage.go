package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/scopetab/script"
)

var (
	usageStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	usageCommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	usageCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// parseOp returns the command named by word, if any.
func parseOp(word string) (script.Op, bool) {
	for _, op := range []script.Op{script.OpBegin, script.OpAssign, script.OpPrint, script.OpEnd} {
		if op.String() == word {
			return op, true
		}
	}

	return script.OpNone, false
}

// renderUsageHint renders the syntax of op with the field at index
// highlighted. Index 0 is the command word itself.
func renderUsageHint(op script.Op, index int) string {
	fields := strings.Fields(op.Usage())
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder

	for i, field := range fields {
		if i > 0 {
			b.WriteString(usageStyle.Render(" "))
		}

		switch {
		case i == 0:
			b.WriteString(usageCommandStyle.Render(field))
		case i == index:
			b.WriteString(usageCurrentStyle.Render(field))
		default:
			b.WriteString(usageStyle.Render(field))
		}
	}

	return b.String()
}
