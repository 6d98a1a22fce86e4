package cli

import (
	"os"

	"gopkg.in/yaml.v2"
)

// suite is a YAML file describing a recurring benchmark matrix, so it
// can live in the repository next to the configs it drives. Explicit
// command-line flags and positional arguments take precedence over
// the values declared here.
type suite struct {
	Executables []string `yaml:"executables"`
	Configs     []string `yaml:"configs"`
	NumRuns     int      `yaml:"num-runs"`
	Logfile     string   `yaml:"logfile"`
}

// readSuite reads and parses a suite file.
func readSuite(filename string) (suite, error) {
	var s suite
	data, err := os.ReadFile(filename)
	if err != nil {
		return suite{}, err
	}
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return suite{}, err
	}
	return s, nil
}
