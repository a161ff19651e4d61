// Package main is the entry point for the coinaddr CLI.
package main

import (
	"os"

	"github.com/mrz1836/coinaddr/internal/cli"
)

// Set at build time via -ldflags.
//
//nolint:gochecknoglobals // Build metadata injected by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	cli.SetBuildInfo(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
