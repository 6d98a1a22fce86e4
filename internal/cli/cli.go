// Package cli implements the command-line interface of benchtab.
package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/benchtab/benchtab/internal/util"
	"github.com/spf13/cobra"
)

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'benchtab --version'.
func getVersion() string {
	return "benchtab " + version
}

// DoCLI reads the command-line arguments and runs the benchmark
// matrix, then exits the process (or returns to indicate normal
// exit).
func DoCLI() {
	// An interrupt means the user gave up on the run; exit without
	// a diagnostic, like reaching the end of output does. Ignoring
	// SIGPIPE makes writes to a closed stdout surface as EPIPE
	// errors instead of killing the process.
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		os.Exit(0)
	}()
	signal.Ignore(syscall.SIGPIPE)

	var suiteFile string
	var executables []string
	var logfile string
	var numRuns int
	var formatStr string

	rootCmd := &cobra.Command{
		Use:   "benchtab -e EXE [-e EXE ...] CONFIG [CONFIG ...]",
		Short: "Benchmark executables against configs and aggregate their timing logs",
		Long: `Run all combinations of benchmark executables and config files and
print timing statistics for each combination on standard output as
TSV. Each combination is run multiple times and produces a single TSV
line that contains the mean and standard deviation of the cumulative
per-run timings.`,
		Version: getVersion(),
		Args:    cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runBench(benchArgs{
				suiteFile:   suiteFile,
				executables: executables,
				configs:     args,
				numRuns:     numRuns,
				numRunsSet:  cmd.Flags().Changed("num-runs"),
				logfile:     logfile,
				logfileSet:  cmd.Flags().Changed("logfile"),
				formatStr:   formatStr,
			})
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringVarP(
		&logfile, "logfile", "l", "-",
		"write the output to FILE instead of standard output",
	)
	rootCmd.Flags().IntVarP(
		&numRuns, "num-runs", "n", 10,
		"the number of times to run each executable/config combination",
	)
	rootCmd.Flags().StringArrayVarP(
		&executables, "executable", "e", nil,
		"an executable to benchmark (can be supplied multiple times)",
	)
	rootCmd.Flags().StringVar(
		&suiteFile, "suite", "",
		"read executables, configs and defaults from a YAML suite file",
	)
	rootCmd.Flags().StringVarP(
		&formatStr, "format", "f", "tsv", `output format ("tsv" or "table")`,
	)
	rootCmd.Flags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show what commands are being run",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		util.DieUsage("%s", err)
	}
}
