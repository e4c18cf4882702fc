package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bawdo/salescope/dataset"
	"github.com/olekukonko/tablewriter"
)

// maxRows caps how many rows a rendered table shows; the rest is
// summarised in a footnote.
const maxRows = 50

// renderFrame prints a table as an ASCII grid with a row-count footer.
func renderFrame(w io.Writer, t *dataset.Table) {
	renderRecords(w, t.Records(), t.Nrow())
}

// renderRecords prints header + rows, truncating past maxRows. total is
// the untruncated row count for the footer.
func renderRecords(w io.Writer, records [][]string, total int) {
	if len(records) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(records[0])
	rows := records[1:]
	truncated := false
	if len(rows) > maxRows {
		rows = rows[:maxRows]
		truncated = true
	}
	for _, row := range rows {
		tw.Append(row)
	}
	tw.Render()
	if truncated {
		fmt.Fprintf(w, "  (%d rows, showing first %d)\n", total, maxRows)
	} else {
		fmt.Fprintf(w, "  (%d rows)\n", total)
	}
}

// renderPivot prints a pivot grid; cells with no contributing rows show
// "-" instead of their zero fill.
func renderPivot(w io.Writer, p *dataset.Pivot) {
	tw := tablewriter.NewWriter(w)
	header := append([]string{p.RowName + " \\ " + p.ColName}, p.Cols...)
	tw.SetHeader(header)
	for i, rowKey := range p.Rows {
		row := make([]string, 0, len(p.Cols)+1)
		row = append(row, rowKey)
		for j := range p.Cols {
			if p.Present[i][j] {
				row = append(row, formatFloat(p.Cells[i][j]))
			} else {
				row = append(row, "-")
			}
		}
		tw.Append(row)
	}
	tw.Render()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
