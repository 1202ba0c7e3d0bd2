package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/scopetab/script"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "dump", "tree", "scopes", "clear", "quit"}

// isWordBoundary reports whether r delimits words for completion: whitespace
// and the expr-lang operator and punctuation characters that may appear in an
// assign VALUE.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '[', ']',
		'+', '-', '*', '/', '%', '^',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the word at cursor and its byte boundaries in input.
// The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(cursor, len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// fieldIndex returns the index of the whitespace-separated field that starts
// before offset: 0 for the command word, 1 for its first argument, and so
// on. It also returns the command word.
func fieldIndex(input string, offset int) (index int, command string) {
	fields := strings.Fields(input[:offset])
	if len(fields) == 0 {
		return 0, ""
	}

	index = len(fields)

	// Still typing the last field.
	if !strings.HasSuffix(input[:offset], " ") && !strings.HasSuffix(input[:offset], "\t") {
		index--
	}

	return index, fields[0]
}

// valueField is the field index of VALUE in an assign command.
const valueField = 2

// candidates returns the completion candidates for the word starting at
// wordStart in eval mode: command keywords for the first field, then the
// names visible from the active scope, plus expr-lang builtins inside an
// assign VALUE.
func (m model) candidates(input string, wordStart int) []string {
	index, command := fieldIndex(input, wordStart)
	if index == 0 {
		return script.Ops()
	}

	var names []string

	switch command {
	case script.OpPrint.String():
		if index != 1 {
			return nil
		}

		names = m.visibleNames()

	case script.OpAssign.String():
		switch {
		case index == 1:
			names = m.visibleNames()
		case index == valueField:
			names = append(m.visibleNames(), builtinNames()...)
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

func (m model) visibleNames() []string {
	if m.interp == nil {
		return nil
	}

	visible := m.interp.Tree().Visible()

	names := make([]string, 0, len(visible))
	for name := range visible {
		names = append(names, name)
	}

	return names
}

// builtinNames returns the names of the expr-lang builtin functions.
func builtinNames() []string {
	names := make([]string, 0, len(builtin.Builtins))
	for _, fn := range builtin.Builtins {
		names = append(names, fn.Name)
	}

	return names
}

// computeMatches calculates the fuzzy matches for the word at the cursor,
// ranked best-first, along with the word boundaries. An empty word has no
// matches so the hint line stays visible.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	var candidates []string
	if m.mode == modeCtrl {
		candidates = ctrlCommands
	} else {
		candidates = m.candidates(input, wordStart)
	}

	if len(candidates) == 0 {
		return nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. The selected candidate (when tabbing) uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted. Builtin functions are suffixed with "()".
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if isFunction(match.Str) {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}

// isFunction reports whether name is an expr-lang builtin function.
func isFunction(name string) bool {
	_, ok := builtin.Index[name]

	return ok
}
