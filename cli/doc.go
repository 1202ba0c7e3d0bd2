// Package cli contains the command line interface for scopetab.
//
// # Usage
//
//	scopetab [flags] [run] [FILE|-]...   run command scripts (default)
//	scopetab demo                        run the built-in demonstration
//	scopetab repl                        start an interactive session
//	scopetab init [--force]              write the configuration file
//
// # Configuration
//
// Flags are read from, in increasing precedence, config.json and
// config.yaml in the user configuration directory, then the command line.
// The YAML file is a flat mapping of flag names:
//
//	log-level: debug
//	table-address-stride: 1000
//
// "scopetab init" writes the current flag values to config.yaml.
//
// Flags may also be set through environment variables named after the
// executable and the flag, such as SCOPETAB_LOG_LEVEL.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include the caller's source location
//   - --[no-]log-pretty: colorize text output
//
// # Symbol Table Options
//
//   - --table-buckets: hash buckets per scope
//   - --table-first-id: identifier of the first scope
//   - --table-address-stride: automatic binding addresses
//   - --[no-]table-prune: discard exited scopes
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profiling mode (see [profile.Modes])
//   - --pprof-dir: profile output directory (default: ~/.cache/scopetab/pprof)
package cli
