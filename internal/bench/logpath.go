package bench

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// logFileKey matches a whole (whitespace-trimmed) config line of the
// form `log_file: "<path>"`.
var logFileKey = regexp.MustCompile(`^log_file: *"(.+)"$`)

// expandUser replaces a leading ~ with the invoking user's home
// directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// LogPath returns the path of the log file declared in the given
// config. The first line matching the log_file key wins. The path is
// computed the same way the benchmarked executables compute it: a
// leading ~ expands to the home directory, and a relative path is
// resolved against the config's own directory. Any divergence from
// that rule would make the driver look for a different file than the
// one the run wrote.
func LogPath(config string) (string, error) {
	f, err := os.Open(config)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		match := logFileKey.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if match == nil {
			continue
		}
		logFile := expandUser(match[1])
		if !filepath.IsAbs(logFile) {
			logFile = filepath.Join(filepath.Dir(config), logFile)
		}
		return logFile, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", &MissingLogKeyError{Config: config}
}
