package cmd

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/pkg"
	"github.com/ardnew/scopetab/script"
	"github.com/ardnew/scopetab/symtab"
)

// Run executes command scripts against a new symbol table.
type Run struct {
	Output `embed:""`

	Global bool   `default:"true"  help:"Open a global scope before the first command." negatable:""`
	Strict bool   `default:"false" help:"Stop at the first failed command."             short:"s"`
	Nature string `default:"local" help:"Nature of bindings assigned without one."`

	Sources []string `arg:"" help:"Command script files or '-' for stdin (default)." name:"source" optional:""`

	stdin *os.File
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stdin := r.stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	srcs, err := openSourceFiles(r.Sources, stdin)
	if err != nil {
		return err
	}
	defer srcs.Close()

	log.DebugContext(ctx, "running scripts",
		slog.Any("sources", srcs.Names()),
		slog.Bool("global", r.Global),
		slog.Bool("strict", r.Strict),
	)

	return r.exec(ctx, srcs.All(), stdoutFrom(ctx))
}

// exec runs each source in turn against one tree, then writes the tree.
func (r *Run) exec(ctx context.Context, srcs iter.Seq2[string, io.Reader], w io.Writer) error {
	tree := symtab.New(treeOptionsFrom(ctx)...)

	if r.Global {
		tree.EnterScope()
	}

	in := script.New(tree, w,
		script.WithStrict(r.Strict),
		script.WithDefaultNature(r.Nature),
		script.WithLogger(log.Default()),
	)

	for name, src := range srcs {
		log.TraceContext(ctx, "running script", slog.String("source", name))

		if err := in.Run(ctx, src); err != nil {
			return pkg.WrapError(err).With(slog.String("source", name))
		}
	}

	return r.write(ctx, w, tree)
}
