// Package symtab implements a lexically-scoped symbol table.
//
// A [Tree] records every scope ever entered. Each [Scope] owns a [Table] of
// [Binding] values and the scopes nested inside it; the tree owns the root
// scopes. A cursor identifies the active scope:
//
//	t := symtab.New()
//	t.EnterScope()              // scope 1, a root
//	_ = t.Assign("a", 1, "local")
//	t.EnterScope()              // scope 2, child of 1
//	_ = t.Assign("a", 3, "para")
//	r, _ := t.Lookup("a")       // r.Value == 3, r.ScopeID == 2
//	_ = t.ExitScope()
//	r, _ = t.Lookup("a")        // r.Value == 1, r.ScopeID == 1
//
// # Lifetime
//
// Exiting a scope only moves the cursor to its parent. The exited scope and
// its bindings stay reachable through [Tree.Roots] and [Scope.Children], so
// the complete history can be inspected after the fact. [WithPruneOnExit]
// opts out of this and detaches scopes as they are exited.
//
// # Lookup
//
// [Tree.Lookup] searches the active scope, then each enclosing scope in
// turn, and stops at the first match: an inner binding always shadows an
// outer binding of the same name. A miss is reported with ok == false and is
// never an error.
//
// # Errors
//
// [Tree.ExitScope] and [Tree.Assign] return [ErrNoActiveScope] when there is
// no active scope. The condition is recoverable; the tree is left unchanged.
//
// # Concurrency
//
// A Tree is not safe for concurrent mutation. Once a caller has finished
// building it, any number of goroutines may read it concurrently.
package symtab
