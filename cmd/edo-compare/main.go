// Package main is the entry point for the edo-compare CLI.
//
// This binary compares equal divisions of the octave and the harmonic
// series degree by degree. It delegates all functionality to the
// internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// at release time. During development, they default to "dev", "none",
// and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/edo-compare/internal/cli"
)

// version, commit, and date are set at build time via ldflags, e.g.
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/edo-compare
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
