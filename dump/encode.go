package dump

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scopetab/symtab"
)

// JSON writes the [Snapshot] of tree as JSON. A positive indent selects
// multi-line output indented by that many spaces per level.
func JSON(ctx context.Context, w io.Writer, tree *symtab.Tree, indent int) error {
	if err := ctx.Err(); err != nil {
		return context.Cause(ctx)
	}

	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(Snapshot(tree), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(Snapshot(tree))
	}

	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", FormatJSON.String()))
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// YAML writes the [Snapshot] of tree as YAML. A positive indent selects
// block style indented by that many spaces per level; otherwise the output
// uses flow style.
func YAML(ctx context.Context, w io.Writer, tree *symtab.Tree, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, Snapshot(tree), opts...)
	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", FormatYAML.String()))
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
