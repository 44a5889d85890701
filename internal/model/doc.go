// Package model defines the shared value types for the edo-compare CLI.
//
// This package contains pure data structures with no external dependencies:
// temperament specs parsed from command-line tokens ("12edo", "harmonic:32"),
// output formats, and the exit codes carried by CLIError so the cli package
// can map domain failures to OS process exit codes.
package model
