package script

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/scopetab/symtab"
)

// Eval evaluates src as a VALUE field against the given visible names.
//
// Integer literals are decimal, leading zeros included, or hexadecimal and
// binary with a 0x or 0b prefix. Anything else is compiled as an
// expr-lang expression whose variables are the names in visible, bound to
// their values; a non-integer numeric result is truncated toward zero.
func Eval(src string, visible map[string]symtab.Resolved) (int64, error) {
	if n, err := parseInt(src); err == nil {
		return n, nil
	}

	env := buildExprEnv(visible)

	program, err := expr.Compile(src, expr.Env(env), expr.AsInt64())
	if err != nil {
		return 0, ErrValue.Wrap(err).With(slog.String("source", src))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return 0, ErrValue.Wrap(err).With(slog.String("source", src))
	}

	n, ok := out.(int64)
	if !ok {
		return 0, ErrValue.With(
			slog.String("source", src),
			slog.Any("result", out),
		)
	}

	return n, nil
}

// parseInt parses an optionally signed integer literal. Only 0x and 0b
// select another base, so "010" is ten.
func parseInt(src string) (int64, error) {
	digits := strings.TrimLeft(src, "+-")
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsRune("xXbB", rune(digits[1])) {
		return strconv.ParseInt(src, 0, 64)
	}

	return strconv.ParseInt(src, 10, 64)
}

// buildExprEnv maps each visible name to its value.
func buildExprEnv(visible map[string]symtab.Resolved) map[string]any {
	env := make(map[string]any, len(visible))
	for name, r := range visible {
		env[name] = r.Value
	}

	return env
}
