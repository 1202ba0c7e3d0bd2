package script

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/symtab"
)

const scenario = `# nested scopes
begin
assign a 1
assign b 2
begin
assign a 3 para
assign c 4
print b
begin
assign c 5
print c
print a
end
print c
end
print a
print c
end
end
foo
`

func TestInterpreter_Run(t *testing.T) {
	var out bytes.Buffer

	tree := symtab.New()
	in := New(tree, &out)

	if err := in.Run(t.Context(), strings.NewReader(scenario)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		"value : 2 |  Scope ID : 1 |  Nature: local |",
		"value : 5 |  Scope ID : 3 |  Nature: local |",
		"value : 3 |  Scope ID : 2 |  Nature: para |",
		"value : 4 |  Scope ID : 2 |  Nature: local |",
		"value : 1 |  Scope ID : 1 |  Nature: local |",
		"Variable c not found in any active scope.",
		"No scope to end.",
		"Unknown command: foo",
	}, "\n") + "\n"

	if got := out.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}

	if got := tree.Len(); got != 3 {
		t.Errorf("tree.Len() = %d, want 3", got)
	}

	if tree.Current() != nil {
		t.Error("expected no active scope after run")
	}
}

func TestInterpreter_Diagnostics(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr error
	}{
		{"end", "No scope to end.\n", symtab.ErrNoActiveScope},
		{"assign x 1", "No active scope to assign variable.\n", symtab.ErrNoActiveScope},
		{"print x", "Variable x not found in any active scope.\n", nil},
		{"launch", "Unknown command: launch\n", ErrUnknownCommand},
		{"print", "line 1: invalid syntax: usage: print NAME\n", ErrSyntax},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer

			in := New(symtab.New(), &out)

			err := in.Exec(t.Context(), tt.line)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Exec(%q) unexpected error: %v", tt.line, err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Exec(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("Exec(%q) wrote %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestInterpreter_AssignExpression(t *testing.T) {
	var out bytes.Buffer

	in := New(symtab.New(), &out)

	src := "begin\nassign a 4\nbegin\nassign a a*2 para\nassign b a+1\nprint b\n"
	if err := in.Run(t.Context(), strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}

	want := "value : 9 |  Scope ID : 2 |  Nature: local |\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestInterpreter_AssignTypeAndAddress(t *testing.T) {
	tree := symtab.New()
	in := New(tree, &bytes.Buffer{})

	for _, line := range []string{"begin", "assign n 1 global int 1001"} {
		if err := in.Exec(t.Context(), line); err != nil {
			t.Fatal(err)
		}
	}

	r, _ := tree.Lookup("n")

	want := symtab.Binding{Name: "n", Nature: "global", Type: "int", Value: 1, Address: 1001}
	if r.Binding != want {
		t.Errorf("Lookup(n) = %+v, want %+v", r.Binding, want)
	}
}

func TestInterpreter_BadValueDoesNotAssign(t *testing.T) {
	var out bytes.Buffer

	tree := symtab.New()
	in := New(tree, &out)

	_ = in.Exec(t.Context(), "begin")

	err := in.Exec(t.Context(), "assign x y+1")
	if !errors.Is(err, ErrValue) {
		t.Fatalf("error = %v, want ErrValue", err)
	}

	if _, ok := tree.Lookup("x"); ok {
		t.Error("failed assign created a binding")
	}

	if !strings.HasPrefix(out.String(), "line 2: invalid value") {
		t.Errorf("diagnostic = %q", out.String())
	}
}

func TestInterpreter_DefaultNature(t *testing.T) {
	tree := symtab.New()
	in := New(tree, &bytes.Buffer{}, WithDefaultNature("global"))

	_ = in.Exec(t.Context(), "begin")
	_ = in.Exec(t.Context(), "assign g 1")

	if r, _ := tree.Lookup("g"); r.Nature != "global" {
		t.Errorf("nature = %q, want global", r.Nature)
	}

	tree = symtab.New()
	in = New(tree, &bytes.Buffer{}, WithDefaultNature(""))

	_ = in.Exec(t.Context(), "begin")
	_ = in.Exec(t.Context(), "assign g 1")

	if r, _ := tree.Lookup("g"); r.Nature != DefaultNature {
		t.Errorf("nature = %q, want %q", r.Nature, DefaultNature)
	}
}

func TestInterpreter_Strict(t *testing.T) {
	var out bytes.Buffer

	tree := symtab.New()
	in := New(tree, &out, WithStrict(true))

	err := in.Run(t.Context(), strings.NewReader("begin\nend\nend\nbegin\n"))
	if !errors.Is(err, symtab.ErrNoActiveScope) {
		t.Fatalf("Run() error = %v, want ErrNoActiveScope", err)
	}

	if !strings.Contains(err.Error(), "no active scope") {
		t.Errorf("error message = %q", err)
	}

	// The fourth line never ran.
	if got := tree.Len(); got != 1 {
		t.Errorf("tree.Len() = %d, want 1", got)
	}

	if got := out.String(); got != "No scope to end.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestInterpreter_Canceled(t *testing.T) {
	cause := errors.New("stopped")

	ctx, cancel := context.WithCancelCause(t.Context())
	cancel(cause)

	tree := symtab.New()
	in := New(tree, &bytes.Buffer{})

	err := in.Run(ctx, strings.NewReader("begin\nbegin\n"))
	if !errors.Is(err, cause) {
		t.Fatalf("Run() error = %v, want %v", err, cause)
	}

	if tree.Len() != 0 {
		t.Error("canceled run executed commands")
	}
}

func TestInterpreter_LogsFailures(t *testing.T) {
	var logs bytes.Buffer

	logger := log.Make(&logs,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelWarn))

	in := New(symtab.New(), &bytes.Buffer{}, WithLogger(logger))

	_ = in.Run(t.Context(), strings.NewReader("end\n"))

	got := logs.String()
	if !strings.Contains(got, `"msg":"command failed"`) || !strings.Contains(got, `"line":1`) {
		t.Errorf("log output = %s", got)
	}
}

func TestInterpreter_DecimalLeadingZero(t *testing.T) {
	var out bytes.Buffer

	in := New(symtab.New(), &out)

	if err := in.Run(t.Context(), strings.NewReader("begin\nassign x 010\nprint x\n")); err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), "value : 10 |  Scope ID : 1 |  Nature: local |\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestInterpreter_RunRestartsLineCount(t *testing.T) {
	var out bytes.Buffer

	in := New(symtab.New(), &out)

	_ = in.Run(t.Context(), strings.NewReader("begin\nprint\n"))
	_ = in.Run(t.Context(), strings.NewReader("print\n"))

	want := "line 2: invalid syntax: usage: print NAME\n" +
		"line 1: invalid syntax: usage: print NAME\n"

	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
