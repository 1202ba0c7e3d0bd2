package script

import "github.com/ardnew/scopetab/pkg"

// Predefined errors (sentinel values).
var (
	ErrUnknownCommand = pkg.NewError("unknown command")
	ErrSyntax         = pkg.NewError("invalid syntax")
	ErrValue          = pkg.NewError("invalid value")
	ErrReadInput      = pkg.NewError("failed to read input")
)
