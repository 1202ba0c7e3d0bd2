package cmd

import (
	"context"
	_ "embed"
	"strings"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/script"
	"github.com/ardnew/scopetab/symtab"
)

//go:embed testdata/demo.scope
var demoScript string

// Demo runs a built-in script that exercises nested scopes and shadowing.
type Demo struct {
	Output `embed:""`

	Print bool `help:"Print the demonstration script instead of running it."`
}

// Run executes the demo command.
func (d *Demo) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := stdoutFrom(ctx)

	if d.Print {
		_, err = w.Write([]byte(demoScript))

		return err
	}

	tree := symtab.New(treeOptionsFrom(ctx)...)
	in := script.New(tree, w,
		script.WithStrict(true),
		script.WithLogger(log.Default()),
	)

	// The hierarchy is printed from inside the global scope, before its
	// closing end.
	body, tail, _ := strings.Cut(demoScript, "# hierarchy\n")

	if err := in.Run(ctx, strings.NewReader(body)); err != nil {
		return err
	}

	if err := d.write(ctx, w, tree); err != nil {
		return err
	}

	return in.Run(ctx, strings.NewReader(tail))
}
