package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files that
// map flag names to values:
//
//	log-level: debug
//	log-format: json
//	table-buckets: 64
//	table-prune: true
//
// Keys may also use underscores ("log_level"). Flags given on the command
// line override the file. An empty file is an empty configuration; a file
// that is not a YAML mapping is an error.
func resolve(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := make(config, len(m))
	for key, value := range m {
		cfg[strings.ReplaceAll(key, "_", "-")] = normalize(value)
	}

	return cfg, nil
}

// config implements [kong.Resolver] over a flat map of flag names.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil //nolint:nilnil
}

// normalize converts decoded YAML scalars to values kong's mappers accept.
// Numbers are passed as strings; sequences become string slices.
func normalize(value any) any {
	switch v := value.(type) {
	case nil, bool, string:
		return v
	case []any:
		s := make([]string, len(v))
		for i, e := range v {
			s[i] = fmt.Sprint(e)
		}

		return s
	default:
		return fmt.Sprint(v)
	}
}
