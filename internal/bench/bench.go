// Package bench runs every combination of benchmark executable and
// config file, and aggregates the timing logs the runs produce into a
// single summary table.
package bench

import (
	"github.com/benchtab/benchtab/internal/table"
	"github.com/benchtab/benchtab/internal/util"
)

// Options describes a benchmark matrix. Executables and Configs are
// benchmarked in the order given, every executable against every
// config. NumRuns is the number of times each combination is invoked
// and must be at least 1; the CLI validates that before the driver
// starts.
type Options struct {
	Executables []string
	Configs     []string
	NumRuns     int
}

// runOnce invokes the executable with the config as its sole
// argument, then reads back the log file the run wrote as a numeric
// table.
func runOnce(executable, config, logFile string) (table.Floats, error) {
	if err := util.RunSilent([]string{executable, config}); err != nil {
		return table.Floats{}, &ProcessFailureError{
			Executable: executable,
			Config:     config,
			Err:        err,
		}
	}
	tsv := table.ReadFile(logFile)
	if tsv.Empty() {
		return table.Floats{}, &LogReadError{Path: logFile}
	}
	return tsv.Floats(), nil
}

// runCombination runs one executable/config pair NumRuns times and
// returns the accumulator table: the first run's log header, and one
// column-sum row per run.
func runCombination(executable, config string, numRuns int) (table.Floats, error) {
	logFile, err := LogPath(config)
	if err != nil {
		return table.Floats{}, err
	}
	var acc table.Floats
	for i := 0; i < numRuns; i++ {
		run, err := runOnce(executable, config, logFile)
		if err != nil {
			return table.Floats{}, err
		}
		if acc.Empty() {
			acc.Header = run.Header
		}
		acc.Rows = append(acc.Rows, run.Sum())
	}
	return acc, nil
}

// Run executes the whole benchmark matrix and returns the summary
// table: one row per combination, with the header fixed on the first
// completed combination as "executable", "config", then that
// combination's log columns. Any failure aborts the run; there is no
// partial result.
func Run(opts Options) (table.TSV, error) {
	var stats table.TSV
	for _, executable := range opts.Executables {
		for _, config := range opts.Configs {
			acc, err := runCombination(executable, config, opts.NumRuns)
			if err != nil {
				return table.TSV{}, err
			}
			if stats.Empty() {
				stats.Header = append([]string{"executable", "config"}, acc.Header...)
			}
			row := append([]string{executable, config}, acc.MeanStdev()...)
			stats.Rows = append(stats.Rows, row)
		}
	}
	return stats, nil
}
