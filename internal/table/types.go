package table

// TSV represents a set of simple tabular data as read from a
// tab-separated log file. Tables have a list of header cells and a
// list of rows. Rows read from a file are not validated against the
// header length; rows added with AddRow are. A TSV with no header is
// "empty", which callers use to detect a missing or unreadable log.
type TSV struct {
	Header []string
	Rows   [][]string
}

// Floats is a TSV whose cells have been coerced to float64. It is the
// form the driver accumulates per-run timing sums in.
type Floats struct {
	Header []string
	Rows   [][]float64
}
