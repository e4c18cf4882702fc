package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Combine appends the rows of a second delimited file, in place. The
// column set becomes the union of both headers; rows missing a column
// get NA there. Any load failure leaves the table unchanged.
func (t *Table) Combine(path string) (int, error) {
	other, err := Load(path)
	if err != nil {
		return 0, err
	}
	df := t.df.Concat(other.df)
	if df.Err != nil {
		return 0, fmt.Errorf("combine: %w", df.Err)
	}
	added := other.df.Nrow()
	t.df = df
	return added, nil
}

// Split groups the table by the distinct values of the criterion
// column. Keys come back sorted so printing is deterministic.
func (t *Table) Split(criterion string) ([]string, map[string]*Table, error) {
	records, err := t.ColumnRecords(criterion)
	if err != nil {
		return nil, nil, err
	}
	byKey := make(map[string][]int)
	for i, rec := range records {
		byKey[rec] = append(byKey[rec], i)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	groups := make(map[string]*Table, len(keys))
	for _, k := range keys {
		groups[k] = &Table{df: t.df.Subset(byKey[k])}
	}
	return keys, groups, nil
}

// Search returns the rows whose value in the named column contains the
// given text, matched case-insensitively. Read-only.
func (t *Table) Search(col, value string) (*Table, error) {
	if err := t.requireColumn(col); err != nil {
		return nil, err
	}
	needle := strings.ToLower(value)
	df := t.df.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			if el.IsNA() {
				return false
			}
			return strings.Contains(strings.ToLower(el.String()), needle)
		},
	})
	if df.Err != nil {
		return nil, fmt.Errorf("search: %w", df.Err)
	}
	return &Table{df: df}, nil
}

// SortBy sorts the whole table by the named column, in place. The sort
// is stable.
func (t *Table) SortBy(col string, ascending bool) error {
	if err := t.requireColumn(col); err != nil {
		return err
	}
	order := dataframe.Sort(col)
	if !ascending {
		order = dataframe.RevSort(col)
	}
	df := t.df.Arrange(order)
	if df.Err != nil {
		return fmt.Errorf("sort: %w", df.Err)
	}
	t.df = df
	return nil
}

// FilterEq returns the rows whose value in the named column equals the
// given value exactly. The comparison is typed per the column: numeric
// columns compare numerically, everything else as exact case-sensitive
// strings. Read-only.
func (t *Table) FilterEq(col, value string) (*Table, error) {
	if err := t.requireColumn(col); err != nil {
		return nil, err
	}
	comparando, err := t.typedValue(col, value)
	if err != nil {
		return nil, err
	}
	df := t.df.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.Eq,
		Comparando: comparando,
	})
	if df.Err != nil {
		return nil, fmt.Errorf("filter: %w", df.Err)
	}
	return &Table{df: df}, nil
}

// typedValue converts a user-supplied literal to the column's type.
func (t *Table) typedValue(col, value string) (interface{}, error) {
	var colType series.Type
	for _, ct := range t.ColumnTypes() {
		if ct.Name == col {
			colType = ct.Type
		}
	}
	switch colType {
	case series.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("column %q is numeric, %q is not", col, value)
		}
		return n, nil
	case series.Float:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q is numeric, %q is not", col, value)
		}
		return f, nil
	case series.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("column %q is boolean, %q is not", col, value)
		}
		return b, nil
	default:
		return value, nil
	}
}

// SumBy sums valueCol per distinct value of keyCol, skipping missing
// values. Keys come back sorted.
func (t *Table) SumBy(keyCol, valueCol string) ([]string, []float64, error) {
	keys, floats, err := t.pairs(keyCol, valueCol)
	if err != nil {
		return nil, nil, err
	}
	sums := make(map[string]float64)
	var order []string
	for i, k := range keys {
		if k == "" || k == "NaN" || math.IsNaN(floats[i]) {
			continue
		}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += floats[i]
	}
	sort.Strings(order)
	out := make([]float64, len(order))
	for i, k := range order {
		out[i] = sums[k]
	}
	return order, out, nil
}

// GroupFloats collects valueCol per distinct value of keyCol, skipping
// missing values. Keys come back sorted.
func (t *Table) GroupFloats(keyCol, valueCol string) ([]string, [][]float64, error) {
	keys, floats, err := t.pairs(keyCol, valueCol)
	if err != nil {
		return nil, nil, err
	}
	groups := make(map[string][]float64)
	var order []string
	for i, k := range keys {
		if k == "" || k == "NaN" || math.IsNaN(floats[i]) {
			continue
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], floats[i])
	}
	sort.Strings(order)
	out := make([][]float64, len(order))
	for i, k := range order {
		out[i] = groups[k]
	}
	return order, out, nil
}

func (t *Table) pairs(keyCol, valueCol string) ([]string, []float64, error) {
	keys, err := t.ColumnRecords(keyCol)
	if err != nil {
		return nil, nil, err
	}
	floats, err := t.ColumnFloats(valueCol)
	if err != nil {
		return nil, nil, err
	}
	return keys, floats, nil
}
