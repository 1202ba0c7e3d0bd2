package dump

import "github.com/ardnew/scopetab/pkg"

// Predefined errors (sentinel values).
var (
	ErrUnknownFormat = pkg.NewError("unknown output format")
	ErrEncode        = pkg.NewError("encode tree")
)
