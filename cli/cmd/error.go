package cmd

import "github.com/ardnew/scopetab/pkg"

var (
	ErrOpenSource  = pkg.NewError("open source file")
	ErrIsDirectory = pkg.NewError("is a directory")
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoConfig    = pkg.NewError("configuration path undefined")
)
