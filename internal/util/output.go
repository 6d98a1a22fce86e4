package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// errorPrefix returns the program name followed by ": error:", the
// prefix used for every diagnostic line written to stderr.
func errorPrefix() string {
	return filepath.Base(os.Args[0]) + ": error:"
}

// Die is like fmt.Printf, but writes a prefixed line to stderr and
// terminates the process with exit status 1.
func Die(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, errorPrefix()+" "+format+"\n", a...)
	os.Exit(1)
}

// DieUsage is like Die but terminates with exit status 2. It is used
// for invalid command-line input, before any benchmark work starts.
func DieUsage(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, errorPrefix()+" "+format+"\n", a...)
	os.Exit(2)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
