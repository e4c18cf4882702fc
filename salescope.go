// Package salescope provides loading, cleaning, analysis, and charting
// of tabular sales data.
//
// This package re-exports commonly used types and functions from
// subpackages for convenience. Advanced users can import subpackages
// directly:
//   - github.com/bawdo/salescope/dataset (tables, cleaning, statistics)
//   - github.com/bawdo/salescope/charts (chart builders and rendering)
package salescope

import (
	"io"

	"github.com/bawdo/salescope/charts"
	"github.com/bawdo/salescope/dataset"
)

// --- Dataset Types ---

// Table is an in-memory tabular dataset backed by a dataframe.
type Table = dataset.Table

// Summary holds descriptive statistics for one numeric column.
type Summary = dataset.Summary

// AggregateReport holds the fixed sales aggregation totals.
type AggregateReport = dataset.AggregateReport

// Pivot is a two-axis summed grid over a value column.
type Pivot = dataset.Pivot

// --- Dataset Constructors ---

// Load reads a CSV file into a Table.
func Load(path string) (*dataset.Table, error) {
	return dataset.Load(path)
}

// ReadCSV reads CSV data from r into a Table.
func ReadCSV(r io.Reader) (*dataset.Table, error) {
	return dataset.ReadCSV(r)
}

// --- Chart Types ---

// Chart is a deferred chart rendering.
type Chart = charts.Chart

// --- Chart Constructors ---

// Bar draws one bar per label.
func Bar(title string, labels []string, values []float64) (*charts.Chart, error) {
	return charts.Bar(title, labels, values)
}

// Pie draws one slice per label, sized by value.
func Pie(title string, labels []string, values []float64) (*charts.Chart, error) {
	return charts.Pie(title, labels, values)
}

// Histogram bins values and draws them as bars.
func Histogram(title string, values []float64, bins int) (*charts.Chart, error) {
	return charts.Histogram(title, values, bins)
}
