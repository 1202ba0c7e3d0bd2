package cli

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scopetab/log"
	"github.com/ardnew/scopetab/symtab"
)

// tableConfig holds the flags shared by every command that builds a
// [symtab.Tree].
type tableConfig struct {
	Buckets       int   `default:"${tableBuckets}" help:"Number of hash buckets per scope."`
	FirstID       int   `default:"${tableFirstID}" help:"Identifier of the first scope."`
	AddressStride int64 `default:"0"               help:"Assign addresses id*stride+n to bindings without one (0 disables)."`
	Prune         bool  `default:"false"           help:"Discard scopes when they are exited."                              negatable:""`
}

func (*tableConfig) vars() kong.Vars {
	return kong.Vars{
		"tableBuckets": strconv.Itoa(symtab.DefaultBuckets),
		"tableFirstID": strconv.Itoa(symtab.DefaultFirstID),
	}
}

func (*tableConfig) group() kong.Group {
	return kong.Group{Key: "table", Title: "Symbol table options"}
}

func (f *tableConfig) options(logger log.Logger) []symtab.Option {
	return []symtab.Option{
		symtab.WithBuckets(f.Buckets),
		symtab.WithFirstID(f.FirstID),
		symtab.WithAddressStride(f.AddressStride),
		symtab.WithPruneOnExit(f.Prune),
		symtab.WithLogger(logger),
	}
}
