package repl

import "github.com/ardnew/scopetab/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds   = pkg.NewError("history index out of range")
	ErrNoInterpreter = pkg.NewError("no interpreter")
)
