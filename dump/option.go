package dump

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

type config struct {
	border     lipgloss.Border
	header     lipgloss.Style
	cell       lipgloss.Style
	enumerator tree.Enumerator
	scope      lipgloss.Style
}

func makeConfig(opts ...Option) config {
	c := config{
		border:     lipgloss.ASCIIBorder(),
		header:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:       lipgloss.NewStyle().Padding(0, 1),
		enumerator: tree.DefaultEnumerator,
		scope:      lipgloss.NewStyle().Bold(true),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Option configures [Table] and [Outline].
type Option func(config) config

// WithBorder sets the border of [Table]. The default is
// [lipgloss.ASCIIBorder].
func WithBorder(border lipgloss.Border) Option {
	return func(c config) config {
		c.border = border

		return c
	}
}

// WithHeaderStyle sets the style of the header row of [Table].
func WithHeaderStyle(style lipgloss.Style) Option {
	return func(c config) config {
		c.header = style

		return c
	}
}

// WithCellStyle sets the style of the body cells of [Table].
func WithCellStyle(style lipgloss.Style) Option {
	return func(c config) config {
		c.cell = style

		return c
	}
}

// WithEnumerator sets the branch glyphs of [Outline].
func WithEnumerator(enum tree.Enumerator) Option {
	return func(c config) config {
		c.enumerator = enum

		return c
	}
}

// WithScopeStyle sets the style of scope labels in [Outline].
func WithScopeStyle(style lipgloss.Style) Option {
	return func(c config) config {
		c.scope = style

		return c
	}
}
