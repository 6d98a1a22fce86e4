package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadSuite(t *testing.T) {
	path := writeSuite(t, `executables:
  - ./bench-tsdf
  - ./bench-occupancy
configs:
  - configs/small.yaml
  - configs/large.yaml
num-runs: 5
logfile: report.tsv
`)

	s, err := readSuite(path)

	require.NoError(t, err)
	assert.Equal(t, suite{
		Executables: []string{"./bench-tsdf", "./bench-occupancy"},
		Configs:     []string{"configs/small.yaml", "configs/large.yaml"},
		NumRuns:     5,
		Logfile:     "report.tsv",
	}, s)
}

func TestReadSuiteUnknownKey(t *testing.T) {
	path := writeSuite(t, "executables: [./bench]\nrepetitions: 5\n")

	_, err := readSuite(path)

	assert.Error(t, err)
}

func TestMergeSuiteFillsUnset(t *testing.T) {
	path := writeSuite(t, `executables: [./bench]
configs: [configs/small.yaml]
num-runs: 5
logfile: report.tsv
`)

	merged := mergeSuite(benchArgs{
		suiteFile: path,
		numRuns:   10,
		logfile:   "-",
	})

	assert.Equal(t, []string{"./bench"}, merged.executables)
	assert.Equal(t, []string{"configs/small.yaml"}, merged.configs)
	assert.Equal(t, 5, merged.numRuns)
	assert.Equal(t, "report.tsv", merged.logfile)
}

func TestMergeSuiteFlagsWin(t *testing.T) {
	path := writeSuite(t, `executables: [./suite-bench]
configs: [configs/small.yaml]
num-runs: 5
logfile: report.tsv
`)

	merged := mergeSuite(benchArgs{
		suiteFile:   path,
		executables: []string{"./flag-bench"},
		configs:     []string{"configs/large.yaml"},
		numRuns:     3,
		numRunsSet:  true,
		logfile:     "flag.tsv",
		logfileSet:  true,
	})

	assert.Equal(t, []string{"./flag-bench"}, merged.executables)
	assert.Equal(t, []string{"configs/large.yaml"}, merged.configs)
	assert.Equal(t, 3, merged.numRuns)
	assert.Equal(t, "flag.tsv", merged.logfile)
}

func TestMergeSuiteWithoutSuiteFile(t *testing.T) {
	args := benchArgs{
		executables: []string{"./bench"},
		configs:     []string{"configs/small.yaml"},
		numRuns:     10,
		logfile:     "-",
	}
	assert.Equal(t, args, mergeSuite(args))
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, outputFormatTSV, parseOutputFormat("tsv"))
	assert.Equal(t, outputFormatTable, parseOutputFormat("table"))
}
