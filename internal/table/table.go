// Package table represents the tab-separated timing tables that
// benchmarked executables write, and the aggregates computed over
// them. It is deliberately lenient: files are not validated for
// rectangular shape, and cells that fail numeric coercion become zero
// rather than errors, so a log with the odd malformed field still
// aggregates.
package table

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/benchtab/benchtab/internal/util"
	"gonum.org/v1/gonum/stat"
)

// New creates a new TSV with the given header and no rows; add rows
// with AddRow.
func New(header ...string) TSV {
	return TSV{Header: header}
}

// ReadFile reads a tab-separated file. The first line is the header,
// every following line a row; a trailing newline on each line is
// stripped before splitting on tabs. An unreadable or empty file
// yields an empty table, not an error.
func ReadFile(filename string) TSV {
	data, err := os.ReadFile(filename)
	if err != nil || len(data) == 0 {
		return TSV{}
	}
	var t TSV
	for i, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		record := strings.Split(line, "\t")
		if i == 0 {
			t.Header = record
		} else {
			t.Rows = append(t.Rows, record)
		}
	}
	return t
}

// Empty reports whether the table has no header.
func (t TSV) Empty() bool {
	return len(t.Header) == 0
}

// String renders the header and rows, fields tab-joined and rows
// newline-joined, with no trailing newline.
func (t TSV) String() string {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, "\n")
}

// AddRow adds a row at the end of a table. The length of the row must
// be the same as the number of headers in the table, or a panic will
// be generated.
func (t *TSV) AddRow(row ...string) {
	if len(row) != len(t.Header) {
		util.Panicf(
			"wrong number of columns in table row (%d != %d)",
			len(row), len(t.Header),
		)
	}
	t.Rows = append(t.Rows, row)
}

// Filter keeps only the columns whose header name satisfies keep,
// applied to the header and every row alike, preserving the relative
// column order.
func (t *TSV) Filter(keep func(name string) bool) {
	indices := []int{}
	for i, name := range t.Header {
		if keep(name) {
			indices = append(indices, i)
		}
	}
	header := make([]string, len(indices))
	for j, i := range indices {
		header[j] = t.Header[i]
	}
	t.Header = header
	for r, row := range t.Rows {
		filtered := make([]string, len(indices))
		for j, i := range indices {
			filtered[j] = row[i]
		}
		t.Rows[r] = filtered
	}
}

// Floats coerces every cell to float64. Cells that fail to parse
// become 0 rather than raising an error.
func (t TSV) Floats() Floats {
	f := Floats{Header: t.Header}
	for _, row := range t.Rows {
		converted := make([]float64, len(row))
		for i, cell := range row {
			x, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				x = 0
			}
			converted[i] = x
		}
		f.Rows = append(f.Rows, converted)
	}
	return f
}

// Empty reports whether the table has no header.
func (f Floats) Empty() bool {
	return len(f.Header) == 0
}

// AddRow adds a row at the end of a table, with the same length check
// as TSV.AddRow.
func (f *Floats) AddRow(row ...float64) {
	if len(row) != len(f.Header) {
		util.Panicf(
			"wrong number of columns in table row (%d != %d)",
			len(row), len(f.Header),
		)
	}
	f.Rows = append(f.Rows, row)
}

// Sum returns the field-wise sum of all rows, or an empty slice for a
// table with no rows. All rows must have the same length as the first.
func (f Floats) Sum() []float64 {
	if len(f.Rows) == 0 {
		return []float64{}
	}
	s := make([]float64, len(f.Rows[0]))
	copy(s, f.Rows[0])
	for _, row := range f.Rows[1:] {
		for i, x := range row {
			s[i] += x
		}
	}
	return s
}

// MeanStdev returns, for each column, the arithmetic mean and the
// unbiased sample standard deviation across all rows, formatted as
// "<mean>±<stdev>" with %f. The stdev is 0 when there are fewer than
// two samples.
func (f Floats) MeanStdev() []string {
	if len(f.Rows) == 0 {
		return []string{}
	}
	s := make([]string, len(f.Rows[0]))
	column := make([]float64, len(f.Rows))
	for i := range f.Rows[0] {
		for r, row := range f.Rows {
			column[r] = row[i]
		}
		mean := stat.Mean(column, nil)
		stdev := 0.0
		if len(column) >= 2 {
			stdev = stat.StdDev(column, nil)
		}
		if math.IsNaN(stdev) {
			stdev = 0
		}
		s[i] = fmt.Sprintf("%f±%f", mean, stdev)
	}
	return s
}
