package symtab

import "github.com/ardnew/scopetab/pkg"

// ErrNoActiveScope is returned by [Tree.ExitScope] and [Tree.Assign] when no
// scope is active. The tree is unchanged and the caller may continue.
var ErrNoActiveScope = pkg.NewError("no active scope")
