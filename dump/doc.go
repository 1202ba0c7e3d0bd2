// Package dump renders the scopes of a [symtab.Tree] for people and
// programs.
//
// [Table] and [Outline] produce text for a terminal. [JSON] and [YAML]
// encode a [Snapshot], the nested form of the tree:
//
//	[{"id": 1, "parent": null, "bindings": [...], "children": [...]}]
//
// Every renderer only reads the tree. Scopes that have been exited are
// included, so the output is the complete history of the tree.
package dump
