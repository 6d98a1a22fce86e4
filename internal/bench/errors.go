package bench

import "fmt"

// MissingLogKeyError means a config file contains no log_file key, so
// the driver cannot locate the timing log its runs would produce.
type MissingLogKeyError struct {
	Config string
}

func (e *MissingLogKeyError) Error() string {
	return "no log_file key found in config " + e.Config
}

// ProcessFailureError means a benchmarked executable exited non-zero
// (or could not be started at all).
type ProcessFailureError struct {
	Executable string
	Config     string
	Err        error
}

func (e *ProcessFailureError) Error() string {
	return fmt.Sprintf("command failed: %s %s: %s", e.Executable, e.Config, e.Err)
}

func (e *ProcessFailureError) Unwrap() error {
	return e.Err
}

// LogReadError means the log file a run should have written is
// missing or unreadable at the resolved path.
type LogReadError struct {
	Path string
}

func (e *LogReadError) Error() string {
	return "couldn't read log file " + e.Path
}
