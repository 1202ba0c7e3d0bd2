package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/pkg"
	"github.com/ardnew/scopetab/symtab"
)

// Interpreter executes commands against a [symtab.Tree] and writes their
// output to an [io.Writer].
type Interpreter struct {
	tree   *symtab.Tree
	out    io.Writer
	strict bool
	nature string
	logger log.Logger
	line   int
}

// New returns an interpreter that drives tree and writes to out.
func New(tree *symtab.Tree, out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		tree:   tree,
		out:    out,
		nature: DefaultNature,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Tree returns the tree driven by in.
func (in *Interpreter) Tree() *symtab.Tree { return in.tree }

// SetOutput redirects the output of subsequent commands to w.
func (in *Interpreter) SetOutput(w io.Writer) { in.out = w }

// Run executes every line read from r. Line numbers in diagnostics count
// from 1 for each call.
//
// A line that fails writes a diagnostic to the output and is logged at Warn
// level; the run then continues with the next line, unless the interpreter
// is strict, in which case Run returns the line's error. Run checks ctx
// before each line and returns its cause once it is done.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)

	in.line = 0

	for scanner.Scan() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		err := in.Exec(ctx, scanner.Text())
		if err != nil && in.strict {
			return pkg.WrapError(err).With(slog.Int("line", in.line))
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrReadInput.Wrap(err)
	}

	return nil
}

// Exec executes a single line and returns its error, if any, after writing
// the corresponding diagnostic to the output.
//
// A print command that finds nothing writes a message but is not an error.
func (in *Interpreter) Exec(ctx context.Context, line string) error {
	in.line++

	err := in.exec(line)
	if err != nil {
		in.diagnose(line, err)
		in.logger.WarnContext(ctx, "command failed",
			slog.Int("line", in.line),
			slog.Any("error", err),
		)
	}

	return err
}

func (in *Interpreter) exec(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}

	in.logger.Trace("command", slog.Int("line", in.line), slog.Any("command", cmd))

	switch cmd.Op {
	case OpBegin:
		in.tree.EnterScope()

	case OpEnd:
		return in.tree.ExitScope()

	case OpAssign:
		return in.assign(cmd)

	case OpPrint:
		in.print(cmd.Name)

	case OpNone:
	}

	return nil
}

func (in *Interpreter) assign(cmd Command) error {
	if in.tree.Current() == nil {
		return symtab.ErrNoActiveScope.With(slog.String("op", "assign"))
	}

	value, err := Eval(cmd.Value, in.tree.Visible())
	if err != nil {
		return err
	}

	nature := cmd.Nature
	if nature == "" {
		nature = in.nature
	}

	var opts []symtab.AssignOption

	if cmd.Type != "" {
		opts = append(opts, symtab.WithType(cmd.Type))
	}

	if cmd.Address != 0 {
		opts = append(opts, symtab.WithAddress(cmd.Address))
	}

	return in.tree.Assign(cmd.Name, value, nature, opts...)
}

func (in *Interpreter) print(name string) {
	r, ok := in.tree.Lookup(name)
	if !ok {
		fmt.Fprintf(in.out, "Variable %s not found in any active scope.\n", name)

		return
	}

	fmt.Fprintf(in.out, "value : %d |  Scope ID : %d |  Nature: %s |\n",
		r.Value, r.ScopeID, r.Nature)
}

// diagnose writes the message reported for err.
func (in *Interpreter) diagnose(line string, err error) {
	switch {
	case errors.Is(err, symtab.ErrNoActiveScope):
		if fields := strings.Fields(line); fields[0] == OpEnd.String() {
			fmt.Fprintln(in.out, "No scope to end.")
		} else {
			fmt.Fprintln(in.out, "No active scope to assign variable.")
		}

	case errors.Is(err, ErrUnknownCommand):
		fmt.Fprintf(in.out, "Unknown command: %s\n", strings.Fields(line)[0])

	default:
		fmt.Fprintf(in.out, "line %d: %v\n", in.line, err)
	}
}
