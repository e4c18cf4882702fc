package dataset

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// sampleOf builds a sorted moremath sample from the non-NaN values.
func sampleOf(xs []float64) *stats.Sample {
	clean := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	s := &stats.Sample{Xs: clean}
	return s.Sort()
}

// Sample returns the named numeric column as a sorted sample with
// missing values stripped.
func (t *Table) Sample(col string) (*stats.Sample, error) {
	floats, err := t.ColumnFloats(col)
	if err != nil {
		return nil, err
	}
	return sampleOf(floats), nil
}

// AggregateReport is the output of Aggregate.
type AggregateReport struct {
	TotalSales  float64
	MeanSales   float64
	TotalProfit float64
	Records     int
}

// Aggregate computes the null-skipping totals over the fixed sales
// columns plus a record count via non-null SalesID entries.
func (t *Table) Aggregate() (AggregateReport, error) {
	for _, col := range []string{"Sales", "Profit", "SalesID"} {
		if err := t.requireColumn(col); err != nil {
			return AggregateReport{}, err
		}
	}
	sales, _ := t.Sample("Sales")
	profit, _ := t.Sample("Profit")
	ids, _ := t.Sample("SalesID")
	return AggregateReport{
		TotalSales:  sales.Sum(),
		MeanSales:   sales.Mean(),
		TotalProfit: profit.Sum(),
		Records:     len(ids.Xs),
	}, nil
}

// Summary is a five-number-plus-count description of a numeric column.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises the named numeric column, skipping missing values.
func (t *Table) Describe(col string) (Summary, error) {
	s, err := t.Sample(col)
	if err != nil {
		return Summary{}, err
	}
	if len(s.Xs) == 0 {
		return Summary{}, fmt.Errorf("column %q has no numeric values", col)
	}
	return Summary{
		Count:  len(s.Xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    s.Quantile(0),
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    s.Quantile(1),
	}, nil
}

// StdDev returns the sample standard deviation of a numeric column.
func (t *Table) StdDev(col string) (float64, error) {
	s, err := t.Sample(col)
	if err != nil {
		return 0, err
	}
	return s.StdDev(), nil
}

// Variance returns the sample variance of a numeric column.
func (t *Table) Variance(col string) (float64, error) {
	s, err := t.Sample(col)
	if err != nil {
		return 0, err
	}
	return s.Variance(), nil
}

// Percentile returns the p-th percentile (0..1) of a numeric column.
func (t *Table) Percentile(col string, p float64) (float64, error) {
	s, err := t.Sample(col)
	if err != nil {
		return 0, err
	}
	return s.Quantile(p), nil
}

// Scale returns xs with every element multiplied by factor; NaN stays
// NaN.
func Scale(xs []float64, factor float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v * factor
	}
	return out
}

// FirstN returns the first n elements (fewer when xs is shorter).
func FirstN(xs []float64, n int) []float64 {
	if n > len(xs) {
		n = len(xs)
	}
	return xs[:n]
}

// LastN returns the last n elements (fewer when xs is shorter).
func LastN(xs []float64, n int) []float64 {
	if n > len(xs) {
		n = len(xs)
	}
	return xs[len(xs)-n:]
}
