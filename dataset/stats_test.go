package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/bawdo/salescope/internal/testutil"
)

func TestAggregateSkipsMissing(t *testing.T) {
	table := loadSales(t)
	report, err := table.Aggregate()
	testutil.AssertNoError(t, err)
	testutil.AssertClose(t, report.TotalSales, 4900, 1e-9)
	testutil.AssertClose(t, report.MeanSales, 4900.0/9, 1e-9)
	testutil.AssertClose(t, report.TotalProfit, 480, 1e-9)
	testutil.AssertEqual(t, report.Records, 10)
}

func TestAggregateAfterMeanFill(t *testing.T) {
	table := loadSales(t)
	before, err := table.Aggregate()
	testutil.AssertNoError(t, err)

	_, err = table.FillMeanColumns("Sales", "Profit")
	testutil.AssertNoError(t, err)

	after, err := table.Aggregate()
	testutil.AssertNoError(t, err)
	// Filling one gap with the mean raises the total by exactly one mean
	// and leaves the mean itself unchanged.
	testutil.AssertClose(t, after.TotalSales, before.TotalSales+before.MeanSales, 1e-9)
	testutil.AssertClose(t, after.MeanSales, before.MeanSales, 1e-9)
}

func TestAggregateRequiresSalesColumns(t *testing.T) {
	table := loadSales(t)
	keys, groups, err := table.Split("Region")
	testutil.AssertNoError(t, err)
	_ = keys
	_, err = groups["East"].Aggregate()
	testutil.AssertNoError(t, err)

	other, err := ReadCSV(strings.NewReader("A,B\n1,2\n"))
	testutil.AssertNoError(t, err)
	_, err = other.Aggregate()
	testutil.AssertError(t, err)
}

func TestDescribe(t *testing.T) {
	table := loadSales(t)
	summary, err := table.Describe("Sales")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary.Count, 9)
	testutil.AssertClose(t, summary.Mean, 4900.0/9, 1e-9)
	testutil.AssertClose(t, summary.Min, 100, 1e-9)
	testutil.AssertClose(t, summary.Median, 500, 1e-9)
	testutil.AssertClose(t, summary.Max, 1000, 1e-9)
	if summary.StdDev <= 0 {
		t.Errorf("expected positive std deviation, got %v", summary.StdDev)
	}
	if summary.Q1 >= summary.Q3 {
		t.Errorf("quartiles out of order: Q1=%v Q3=%v", summary.Q1, summary.Q3)
	}
}

func TestDescribeEmptyColumn(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Region,Sales\nEast,\nWest,\n"))
	testutil.AssertNoError(t, err)
	_, err = table.Describe("Sales")
	testutil.AssertError(t, err)
}

func TestVarianceMatchesStdDev(t *testing.T) {
	table := loadSales(t)
	std, err := table.StdDev("Sales")
	testutil.AssertNoError(t, err)
	variance, err := table.Variance("Sales")
	testutil.AssertNoError(t, err)
	testutil.AssertClose(t, variance, std*std, 1e-6)
}

func TestPercentileBounds(t *testing.T) {
	table := loadSales(t)
	lo, err := table.Percentile("Sales", 0)
	testutil.AssertNoError(t, err)
	hi, err := table.Percentile("Sales", 1)
	testutil.AssertNoError(t, err)
	testutil.AssertClose(t, lo, 100, 1e-9)
	testutil.AssertClose(t, hi, 1000, 1e-9)
}

func TestScalePreservesNaN(t *testing.T) {
	out := Scale([]float64{1, math.NaN(), 3}, 2)
	testutil.AssertClose(t, out[0], 2, 1e-9)
	if !math.IsNaN(out[1]) {
		t.Errorf("expected NaN to stay NaN, got %v", out[1])
	}
	testutil.AssertClose(t, out[2], 6, 1e-9)
}

func TestFirstNLastN(t *testing.T) {
	xs := []float64{1, 2, 3}
	testutil.AssertEqual(t, len(FirstN(xs, 5)), 3)
	testutil.AssertEqual(t, len(LastN(xs, 2)), 2)
	testutil.AssertClose(t, LastN(xs, 2)[0], 2, 1e-9)
}
