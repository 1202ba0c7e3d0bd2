// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured once, at creation time, with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
//	logger.Info("scope entered", slog.Int("id", 3))
//
// Attributes are always [slog.Attr] values; there is no loosely-typed
// key/value variant.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's Debug and is used
// for per-operation detail such as every scope entry and binding.
//
// # Zero value
//
// The zero [Logger] discards everything. Libraries accept a Logger through an
// option and log unconditionally; callers that never configure one pay only
// for a nil check.
//
// # Package logger
//
// The package-level functions ([Info], [WarnContext], ...) write through a
// default logger on [os.Stderr] that the CLI reconfigures with [Config].
package log
