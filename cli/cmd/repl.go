package cmd

import (
	"context"
	"io"

	"github.com/ardnew/scopetab/cli/cmd/repl"
	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/script"
	"github.com/ardnew/scopetab/symtab"
)

// Repl starts an interactive session against a new symbol table.
type Repl struct {
	Global bool   `default:"true"  help:"Open a global scope before the first command." negatable:""`
	Nature string `default:"local" help:"Nature of bindings assigned without one."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tree := symtab.New(treeOptionsFrom(ctx)...)

	if r.Global {
		tree.EnterScope()
	}

	in := script.New(tree, io.Discard,
		script.WithDefaultNature(r.Nature),
		script.WithLogger(log.Default()),
	)

	cacheDir, _ := varFrom(ctx, CacheIdentifier)

	return repl.Run(ctx, in, cacheDir, log.Default())
}
