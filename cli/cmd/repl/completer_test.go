package repl

import (
	"bytes"
	"slices"
	"testing"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/script"
	"github.com/ardnew/scopetab/symtab"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "beg", 3, "beg", 0, 3},
		{"second_field", "print co", 8, "co", 6, 8},
		{"after_plus", "assign x a+co", 13, "co", 11, 13},
		{"after_minus", "assign x a-co", 13, "co", 11, 13},
		{"after_paren", "assign x max(co", 15, "co", 13, 15},
		{"after_comma", "assign x max(a,co", 17, "co", 15, 17},
		{"empty_at_boundary", "print ", 6, "", 6, 6},
		{"mid_word", "counter", 3, "counter", 0, 7},
		{"at_start", "end", 0, "end", 0, 3},
		{"cursor_past_end", "end", 10, "end", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFieldIndex(t *testing.T) {
	tests := []struct {
		input       string
		offset      int
		wantIndex   int
		wantCommand string
	}{
		{"", 0, 0, ""},
		{"as", 0, 0, ""},
		{"assign", 6, 0, "assign"},
		{"assign ", 7, 1, "assign"},
		{"assign x", 7, 1, "assign"},
		{"assign x ", 9, 2, "assign"},
		{"assign x a+b", 11, 2, "assign"},
		{"assign x 1 loc", 11, 3, "assign"},
		{"print\tx", 6, 1, "print"},
	}

	for _, tt := range tests {
		index, command := fieldIndex(tt.input, tt.offset)
		if index != tt.wantIndex || command != tt.wantCommand {
			t.Errorf("fieldIndex(%q, %d) = (%d, %q), want (%d, %q)",
				tt.input, tt.offset, index, command, tt.wantIndex, tt.wantCommand)
		}
	}
}

func testModel(t *testing.T, lines ...string) model {
	t.Helper()

	in := script.New(symtab.New(), &bytes.Buffer{})
	for _, line := range lines {
		if err := in.Exec(t.Context(), line); err != nil {
			t.Fatalf("Exec(%q) error = %v", line, err)
		}
	}

	return newModel(t.Context(), in, NewHistory(""), log.Logger{})
}

func TestCandidates(t *testing.T) {
	m := testModel(t, "begin", "assign alpha 1", "begin", "assign beta 2", "assign alpha 3")

	tests := []struct {
		name      string
		input     string
		wordStart int
		want      []string
		contains  []string
	}{
		{name: "command", input: "pr", wordStart: 0, want: script.Ops()},
		{name: "print name", input: "print a", wordStart: 6, want: []string{"alpha", "beta"}},
		{name: "print extra", input: "print a b", wordStart: 8, want: nil},
		{name: "assign name", input: "assign a", wordStart: 7, want: []string{"alpha", "beta"}},
		{
			name:      "assign value",
			input:     "assign x a+b",
			wordStart: 11,
			contains:  []string{"alpha", "beta", "max", "abs"},
		},
		{name: "assign nature", input: "assign x 1 l", wordStart: 11, want: nil},
		{name: "begin args", input: "begin x", wordStart: 6, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.candidates(tt.input, tt.wordStart)

			if tt.contains != nil {
				for _, c := range tt.contains {
					if !slices.Contains(got, c) {
						t.Errorf("candidates(%q) missing %q: %v", tt.input, c, got)
					}
				}

				return
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("candidates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeMatches(t *testing.T) {
	m := testModel(t, "begin", "assign counter 1", "assign cursor 2")

	m.input.SetValue("print cnt")
	m.input.SetCursor(len("print cnt"))

	matches, start, end := m.computeMatches()
	if start != 6 || end != 9 {
		t.Errorf("bounds = (%d, %d), want (6, 9)", start, end)
	}

	if len(matches) != 1 || matches[0].Str != "counter" {
		t.Errorf("matches = %v, want [counter]", matches)
	}

	m = m.switchToMode(modeCtrl)
	m.input.SetValue("dmp")
	m.input.SetCursor(3)

	matches, _, _ = m.computeMatches()
	if len(matches) == 0 || matches[0].Str != "dump" {
		t.Errorf("ctrl matches = %v, want dump first", matches)
	}
}

func TestRenderCandidateBar(t *testing.T) {
	m := testModel(t, "begin")

	m.input.SetValue("e")
	m.input.SetCursor(1)

	matches, _, _ := m.computeMatches()
	if len(matches) == 0 {
		t.Fatal("expected matches for e")
	}

	if bar := renderCandidateBar(matches, -1, false, 80); bar == "" {
		t.Error("renderCandidateBar() returned empty bar")
	}

	if bar := renderCandidateBar(matches, -1, false, 0); bar != "" {
		t.Errorf("renderCandidateBar() with zero width = %q", bar)
	}
}

func TestIsFunction(t *testing.T) {
	if !isFunction("max") {
		t.Error("max should be a builtin function")
	}

	if isFunction("alpha") {
		t.Error("alpha is not a builtin")
	}
}
