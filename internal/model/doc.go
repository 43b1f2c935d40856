// Package model defines the domain types and value objects for the
// resistor CLI.
//
// This package contains pure data structures with no external dependencies.
// Colors, decoded results and exit codes are all invocation-scoped: they are
// derived from the command-line arguments on every run and nothing is
// persisted between runs.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
