package cmd

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scopetab/symtab"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdoutFrom returns the output writer of the kong.Context stored in ctx,
// or os.Stdout.
func stdoutFrom(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// varFrom returns the kong variable named key, if any.
func varFrom(ctx context.Context, key string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[key]

	return v, ok
}

type treeOptionsKey struct{}

// WithTreeOptions returns a new context.Context carrying the options used by
// every command to construct its [symtab.Tree].
func WithTreeOptions(ctx context.Context, opts ...symtab.Option) context.Context {
	return context.WithValue(ctx, treeOptionsKey{}, opts)
}

func treeOptionsFrom(ctx context.Context) []symtab.Option {
	opts, _ := ctx.Value(treeOptionsKey{}).([]symtab.Option)

	return opts
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceFiles reads a sequence of command scripts in order, with stdin last.
type sourceFiles struct {
	files []*os.File
	stdin io.Reader
}

// openSourceFiles opens the scripts named by sources. An empty list means
// stdin.
//
// Readers are deduplicated by resolving symlinks and comparing device/inode
// pairs. All occurrences of "-", or of a path that refers to stdin, are
// replaced with a single stdin reader placed last so it reads after all
// regular files.
func openSourceFiles(sources []string, stdin *os.File) (*sourceFiles, error) {
	if len(sources) == 0 {
		return &sourceFiles{stdin: stdin}, nil
	}

	var (
		srcs sourceFiles
		errs []error
	)

	seen := make(map[fileKey]struct{})

	var stdinKey fileKey
	if info, err := stdin.Stat(); err == nil {
		stdinKey, _ = makeFileKey(info)
	}

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		file, err := openUniqueFile(src, seen, stdinKey)
		if err != nil {
			errs = append(errs, ErrOpenSource.With(slog.String("path", src)).Wrap(err))

			continue
		}

		if file != nil {
			srcs.files = append(srcs.files, file)
		}
	}

	if _, ok := seen[stdinKey]; ok {
		srcs.stdin = stdin
	}

	if err := errors.Join(errs...); err != nil {
		return nil, errors.Join(err, srcs.Close())
	}

	return &srcs, nil
}

// All returns each source with its name, in reading order. Sources are
// yielded separately so that lines never span two files.
func (s *sourceFiles) All() iter.Seq2[string, io.Reader] {
	return func(yield func(string, io.Reader) bool) {
		for _, f := range s.files {
			if !yield(f.Name(), f) {
				return
			}
		}

		if s.stdin != nil {
			yield(stdinSource, s.stdin)
		}
	}
}

// Names returns the names of the sources in reading order.
func (s *sourceFiles) Names() []string {
	names := make([]string, 0, len(s.files)+1)
	for _, f := range s.files {
		names = append(names, f.Name())
	}

	if s.stdin != nil {
		names = append(names, stdinSource)
	}

	return names
}

// Close closes every opened file. Stdin is left open.
func (s *sourceFiles) Close() error {
	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// A duplicate, or a path referring to stdin, returns a nil file and no
// error.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
	stdinKey fileKey,
) (*os.File, error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, err
	}

	// Get file info to extract device and inode.
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, ErrIsDirectory
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, nil
		}

		seen[key] = struct{}{}

		if key == stdinKey {
			return nil, nil
		}
	}

	return os.Open(resolved)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
