package cli

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/benchtab/benchtab/internal/bench"
	"github.com/benchtab/benchtab/internal/table"
	"github.com/benchtab/benchtab/internal/util"
)

// parseOutputFormat takes "tsv" or "table" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "tsv":
		return outputFormatTSV
	case "table":
		return outputFormatTable
	default:
		util.DieUsage(`invalid format %#v (must be "tsv" or "table")`, formatStr)
		return 0
	}
}

// benchArgs carries the command line into runBench. The *Set fields
// record whether a flag was given explicitly; explicit flags beat
// values from the suite file.
type benchArgs struct {
	suiteFile   string
	executables []string
	configs     []string
	numRuns     int
	numRunsSet  bool
	logfile     string
	logfileSet  bool
	formatStr   string
}

// mergeSuite fills in unset arguments from the suite file, if one was
// given.
func mergeSuite(args benchArgs) benchArgs {
	if args.suiteFile == "" {
		return args
	}
	s, err := readSuite(args.suiteFile)
	if err != nil {
		util.DieUsage("%s: %s", args.suiteFile, err)
	}
	if len(args.executables) == 0 {
		args.executables = s.Executables
	}
	if len(args.configs) == 0 {
		args.configs = s.Configs
	}
	if !args.numRunsSet && s.NumRuns != 0 {
		args.numRuns = s.NumRuns
	}
	if !args.logfileSet && s.Logfile != "" {
		args.logfile = s.Logfile
	}
	return args
}

// validateArgs checks the merged benchmark matrix. A non-nil error
// means the command line is unusable and nothing may be invoked;
// runBench maps it to exit status 2.
func validateArgs(args benchArgs) error {
	if args.numRuns < 1 {
		return errors.New("argument --num-runs: value must be greater than 0")
	}
	if len(args.executables) == 0 {
		return errors.New("at least one --executable is required")
	}
	if len(args.configs) == 0 {
		return errors.New("at least one config is required")
	}
	return nil
}

// runBench implements the benchtab command: validate the matrix, run
// it, and emit the report.
func runBench(args benchArgs) {
	format := parseOutputFormat(args.formatStr)
	args = mergeSuite(args)
	if err := validateArgs(args); err != nil {
		util.DieUsage("%s", err)
	}

	stats, err := bench.Run(bench.Options{
		Executables: args.executables,
		Configs:     args.configs,
		NumRuns:     args.numRuns,
	})
	if err != nil {
		util.Die("%s", err)
	}

	if args.logfile == "-" {
		emit(stats, format)
	} else {
		util.TryWriteAtomic(args.logfile, []byte(stats.String()+"\n"))
	}
}

// emit renders the report to stdout. A write failing with EPIPE means
// the consumer went away; treat it like the end of output and exit
// cleanly.
func emit(stats table.TSV, format outputFormat) {
	if format == outputFormatTable {
		stats.Print()
		return
	}
	if _, err := fmt.Println(stats); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(0)
		}
		util.Die("writing report: %s", err)
	}
}
