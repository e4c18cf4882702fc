package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingRows returns a read-only sub-table of the rows that contain at
// least one missing value.
func (t *Table) MissingRows() *Table {
	var idx []int
	for r := 0; r < t.df.Nrow(); r++ {
		if t.rowHasMissing(r) {
			idx = append(idx, r)
		}
	}
	if idx == nil {
		idx = []int{}
	}
	return &Table{df: t.df.Subset(idx)}
}

// FillMeanColumns fills missing values in each named numeric column
// with that column's own mean, skipping columns that are absent or
// already fully populated. Returns the names actually filled. Applying
// it twice changes nothing the second time.
func (t *Table) FillMeanColumns(cols ...string) ([]string, error) {
	df := t.df
	var filled []string
	for _, col := range cols {
		if !t.HasColumn(col) {
			continue
		}
		floats := df.Col(col).Float()
		s := sampleOf(floats)
		if len(s.Xs) == 0 || len(s.Xs) == len(floats) {
			continue
		}
		mean := s.Mean()
		out := make([]float64, len(floats))
		for i, v := range floats {
			if math.IsNaN(v) {
				out[i] = mean
			} else {
				out[i] = v
			}
		}
		df = df.Mutate(series.New(out, series.Float, col))
		if df.Err != nil {
			return nil, fmt.Errorf("fill %s: %w", col, df.Err)
		}
		filled = append(filled, col)
	}
	t.df = df
	return filled, nil
}

// DropMissing removes every row containing any missing value, in place,
// and returns the number of rows removed.
func (t *Table) DropMissing() int {
	keep := []int{}
	for r := 0; r < t.df.Nrow(); r++ {
		if !t.rowHasMissing(r) {
			keep = append(keep, r)
		}
	}
	removed := t.df.Nrow() - len(keep)
	if removed == 0 {
		return 0
	}
	t.df = t.df.Subset(keep)
	return removed
}

// FillAll replaces every missing value dataset-wide with the given
// literal, in place. Column types are re-detected afterwards, so
// filling a numeric column with text turns it into a string column.
func (t *Table) FillAll(value string) error {
	records := t.df.Records()
	for r := 1; r < len(records); r++ {
		for c := range records[r] {
			if t.isMissing(r-1, c) {
				records[r][c] = value
			}
		}
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("fill missing: %w", df.Err)
	}
	t.df = df
	return nil
}
