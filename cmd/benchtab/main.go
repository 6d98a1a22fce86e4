// Package main implements the benchtab binary. It is the only
// public-facing entry point to benchtab, since its Go packages are
// all internal.
package main

import "github.com/benchtab/benchtab/internal/cli"

// Main entry point for the benchtab binary.
func main() {
	cli.DoCLI()
}
