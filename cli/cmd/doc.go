// Package cmd provides the subcommands of scopetab: run, demo, repl and init.
//
// Commands receive their [kong.Context] and the options for constructing a
// [symtab.Tree] through the [context.Context] passed to Run.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
