package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ardnew/scopetab/dump"
	"github.com/ardnew/scopetab/symtab"
)

// hierarchyHeader precedes the table dump.
const hierarchyHeader = "\nScope Hierarchy and Variables:"

// Output holds the flags selecting how a finished tree is printed.
type Output struct {
	Dump   bool        `default:"true"  help:"Print the scope hierarchy when finished." negatable:""`
	Format dump.Format `default:"table" help:"Hierarchy format (${formats})."            short:"o"`
	Indent int         `default:"2"     help:"Indent width for json and yaml output."   short:"i"`
}

func (o Output) write(ctx context.Context, w io.Writer, tree *symtab.Tree) error {
	if !o.Dump {
		return nil
	}

	if o.Format == dump.FormatTable {
		if _, err := fmt.Fprintln(w, hierarchyHeader); err != nil {
			return err
		}
	}

	return dump.Write(ctx, w, tree, o.Format, o.Indent)
}
