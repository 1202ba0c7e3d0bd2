package dump

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/scopetab/symtab"
)

// Format selects a renderer for [Write].
type Format int

// Supported formats.
const (
	FormatTable Format = iota
	FormatOutline
	FormatJSON
	FormatYAML
)

// DefaultFormat is used when no format is specified.
const DefaultFormat = FormatTable

var formatName = []string{
	FormatTable:   "table",
	FormatOutline: "outline",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatName) {
		return ""
	}

	return formatName[f]
}

// Formats returns the names of all formats.
func Formats() []string { return append([]string(nil), formatName...) }

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatName {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}

	return DefaultFormat, ErrUnknownFormat.With(slog.String("format", s))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Write renders tree to w in the given format. Indent applies to
// [FormatJSON] and [FormatYAML] only.
func Write(
	ctx context.Context,
	w io.Writer,
	tree *symtab.Tree,
	format Format,
	indent int,
	opts ...Option,
) error {
	switch format {
	case FormatTable:
		return Table(w, tree, opts...)
	case FormatOutline:
		return Outline(w, tree, opts...)
	case FormatJSON:
		return JSON(ctx, w, tree, indent)
	case FormatYAML:
		return YAML(ctx, w, tree, indent)
	}

	return ErrUnknownFormat.With(slog.Int("format", int(format)))
}
