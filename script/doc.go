// Package script drives a [symtab.Tree] from line-oriented commands.
//
// Each line holds one command with whitespace-separated fields:
//
//	begin                                      enter a scope
//	assign NAME VALUE [NATURE [TYPE [ADDRESS]]] bind NAME in the active scope
//	print NAME                                 resolve NAME and print it
//	end                                        exit the active scope
//
// Blank lines and lines starting with '#' are ignored.
//
// VALUE is an integer literal (decimal, or with a 0x, 0o, or 0b prefix) or
// an expression in the [expr] language, written without spaces, over the
// names visible from the active scope:
//
//	assign a 1
//	assign b a*10+2
//
// NATURE defaults to "local". ADDRESS follows the syntax of integer VALUEs.
//
// [expr]: https://expr-lang.org
package script
