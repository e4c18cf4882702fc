package dataset

import (
	"math"
	"sort"
)

// Pivot is a two-axis summary: Rows × Cols of summed values. Cells for
// combinations that never occur are numerically zero; Present records
// which cells had data so renderers can show the gap.
type Pivot struct {
	RowName string
	ColName string
	Rows    []string
	Cols    []string
	Cells   [][]float64
	Present [][]bool
}

// PivotSales sums Sales per Region (rows) × Year (columns).
func (t *Table) PivotSales() (*Pivot, error) {
	return t.PivotSum("Region", "Year", "Sales")
}

// PivotSum builds a pivot of summed valueCol with rowCol values as rows
// and colCol values as columns, both sorted. Missing values are skipped.
func (t *Table) PivotSum(rowCol, colCol, valueCol string) (*Pivot, error) {
	rowKeys, err := t.ColumnRecords(rowCol)
	if err != nil {
		return nil, err
	}
	colKeys, err := t.ColumnRecords(colCol)
	if err != nil {
		return nil, err
	}
	values, err := t.ColumnFloats(valueCol)
	if err != nil {
		return nil, err
	}

	type cell struct{ row, col string }
	sums := make(map[cell]float64)
	seen := make(map[cell]bool)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	for i := range values {
		r, c := rowKeys[i], colKeys[i]
		if r == "" || r == "NaN" || c == "" || c == "NaN" || math.IsNaN(values[i]) {
			continue
		}
		rowSet[r] = true
		colSet[c] = true
		sums[cell{r, c}] += values[i]
		seen[cell{r, c}] = true
	}

	p := &Pivot{RowName: rowCol, ColName: colCol}
	for r := range rowSet {
		p.Rows = append(p.Rows, r)
	}
	for c := range colSet {
		p.Cols = append(p.Cols, c)
	}
	sort.Strings(p.Rows)
	sort.Strings(p.Cols)

	p.Cells = make([][]float64, len(p.Rows))
	p.Present = make([][]bool, len(p.Rows))
	for i, r := range p.Rows {
		p.Cells[i] = make([]float64, len(p.Cols))
		p.Present[i] = make([]bool, len(p.Cols))
		for j, c := range p.Cols {
			p.Cells[i][j] = sums[cell{r, c}]
			p.Present[i][j] = seen[cell{r, c}]
		}
	}
	return p, nil
}
