// Package dataset wraps a gota DataFrame with the operations the
// explorer needs: loading delimited files, inspecting and cleaning the
// data, combining, splitting, searching, sorting, filtering, and the
// aggregate/statistics/pivot reports.
//
// A Table is the single mutable dataset of a session. Mutating
// operations replace the wrapped frame in place; every operation either
// fully succeeds or leaves the previous frame untouched.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DateColumnName is the conventional name of the date/time column.
// When present it is normalised to ISO-8601 form at load time.
const DateColumnName = "Date"

var errEmptyFrame = errors.New("dataset has no columns")

// Table holds one loaded tabular dataset.
type Table struct {
	df dataframe.DataFrame
}

// Load reads a comma-separated file with a header row into a Table.
// A Date column, when present, is normalised before the table is
// returned; an unparseable date fails the whole load.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV reads comma-separated data with a header row from r.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}
	if df.Ncol() == 0 {
		return nil, errEmptyFrame
	}
	t := &Table{df: df}
	if err := t.normalizeDates(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromDataFrame wraps an existing frame. Intended for tests and for
// sub-tables produced by Split.
func FromDataFrame(df dataframe.DataFrame) *Table {
	return &Table{df: df}
}

// DataFrame returns a copy of the wrapped frame.
func (t *Table) DataFrame() dataframe.DataFrame { return t.df }

// Nrow returns the number of data rows.
func (t *Table) Nrow() int { return t.df.Nrow() }

// Ncol returns the number of columns.
func (t *Table) Ncol() int { return t.df.Ncol() }

// Columns returns the column names in frame order.
func (t *Table) Columns() []string { return t.df.Names() }

// ColumnTypes returns name→type pairs in frame order.
func (t *Table) ColumnTypes() []ColumnType {
	names := t.df.Names()
	types := t.df.Types()
	out := make([]ColumnType, len(names))
	for i, name := range names {
		out[i] = ColumnType{Name: name, Type: types[i]}
	}
	return out
}

// ColumnType pairs a column name with its series type.
type ColumnType struct {
	Name string
	Type series.Type
}

// HasColumn reports whether the named column exists (case-sensitive).
func (t *Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// requireColumn returns a uniform error for a missing column.
func (t *Table) requireColumn(name string) error {
	if !t.HasColumn(name) {
		return fmt.Errorf("column %q not found (have: %s)", name, strings.Join(t.df.Names(), ", "))
	}
	return nil
}

// Head returns the first n rows as a read-only sub-table.
func (t *Table) Head(n int) *Table {
	return t.subsetRange(0, n)
}

// Tail returns the last n rows as a read-only sub-table.
func (t *Table) Tail(n int) *Table {
	total := t.df.Nrow()
	start := total - n
	if start < 0 {
		start = 0
	}
	return t.subsetRange(start, total)
}

func (t *Table) subsetRange(start, end int) *Table {
	if end > t.df.Nrow() {
		end = t.df.Nrow()
	}
	if start >= end {
		return &Table{df: t.df.Subset([]int{})}
	}
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return &Table{df: t.df.Subset(idx)}
}

// Records returns the data as strings, header row first.
func (t *Table) Records() [][]string { return t.df.Records() }

// Info writes a structural summary: dimensions plus per-column type and
// non-null count.
func (t *Table) Info(w io.Writer) {
	fmt.Fprintf(w, "%d rows × %d columns\n", t.df.Nrow(), t.df.Ncol())
	types := t.df.Types()
	for i, name := range t.df.Names() {
		nonNull := 0
		for r := 0; r < t.df.Nrow(); r++ {
			if !t.isMissing(r, i) {
				nonNull++
			}
		}
		fmt.Fprintf(w, "  %-12s %-7s %d non-null\n", name, types[i], nonNull)
	}
}

// isMissing reports whether the cell at (row, col index) holds no value.
// gota marks numeric NA as NaN; string columns keep empty cells as "".
func (t *Table) isMissing(row, col int) bool {
	el := t.df.Elem(row, col)
	if el.IsNA() {
		return true
	}
	return t.df.Types()[col] == series.String && el.String() == ""
}

// rowHasMissing reports whether any cell in the row is missing.
func (t *Table) rowHasMissing(row int) bool {
	for c := 0; c < t.df.Ncol(); c++ {
		if t.isMissing(row, c) {
			return true
		}
	}
	return false
}

// ColumnFloats returns the named column as floats, NaN where missing or
// non-numeric.
func (t *Table) ColumnFloats(name string) ([]float64, error) {
	if err := t.requireColumn(name); err != nil {
		return nil, err
	}
	return t.df.Col(name).Float(), nil
}

// ColumnRecords returns the named column as strings.
func (t *Table) ColumnRecords(name string) ([]string, error) {
	if err := t.requireColumn(name); err != nil {
		return nil, err
	}
	return t.df.Col(name).Records(), nil
}
