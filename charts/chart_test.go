package charts

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bawdo/salescope/internal/testutil"
)

func renderPNG(t *testing.T, c *Chart) []byte {
	t.Helper()
	var buf bytes.Buffer
	testutil.AssertNoError(t, c.WritePNG(&buf))
	if buf.Len() == 0 {
		t.Fatal("rendered chart is empty")
	}
	return buf.Bytes()
}

var (
	testLabels = []string{"East", "North", "West"}
	testValues = []float64{300, 150, 200}
	testGroups = [][]float64{
		{90, 100, 110, 120, 130, 200},
		{40, 50, 60, 70, 80, 90},
		{10, 30, 50, 70, 90, 110},
	}
)

func testTimes(n int) []time.Time {
	out := make([]time.Time, n)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = base.AddDate(0, 0, i)
	}
	return out
}

func TestBar(t *testing.T) {
	c, err := Bar("Sales by Region", testLabels, testValues)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c.Title, "Sales by Region")
	renderPNG(t, c)
}

func TestBarNoData(t *testing.T) {
	_, err := Bar("empty", nil, nil)
	testutil.AssertError(t, err)
}

func TestTimeLine(t *testing.T) {
	c, err := TimeLine("Trend", testTimes(5), []float64{1, 3, 2, 5, 4})
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestStepLine(t *testing.T) {
	c, err := StepLine("Trend", testTimes(4), []float64{1, 3, 2, 5})
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestStepLineNeedsTwoPoints(t *testing.T) {
	_, err := StepLine("Trend", testTimes(1), []float64{1})
	testutil.AssertError(t, err)
}

func TestScatter(t *testing.T) {
	c, err := Scatter("Profit vs Sales", "Sales", "Profit",
		[]float64{100, 200, 300, 400}, []float64{10, 25, 28, 41})
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestPie(t *testing.T) {
	c, err := Pie("Share", testLabels, testValues)
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestHistogram(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 10}
	c, err := Histogram("Distribution", values, 5)
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestHistogramAllNaN(t *testing.T) {
	nan := []float64{math.NaN(), math.NaN()}
	_, err := Histogram("Distribution", nan, 5)
	testutil.AssertError(t, err)
}

func TestBox(t *testing.T) {
	c, err := Box("Spread", testLabels, testGroups)
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestViolin(t *testing.T) {
	c, err := Violin("Density", testLabels, testGroups)
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestStackedArea(t *testing.T) {
	xs := []float64{2021, 2022, 2023}
	rows := [][]float64{
		{100, 120, 140},
		{80, 90, 100},
	}
	c, err := StackedArea("Stacked", xs, []string{"East", "West"}, rows)
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestLine(t *testing.T) {
	c, err := Line("Plain", []float64{1, 2, 3}, []float64{2, 4, 8})
	testutil.AssertNoError(t, err)
	renderPNG(t, c)
}

func TestSavePNGCreatesParentDirs(t *testing.T) {
	c, err := Bar("Sales", testLabels, testValues)
	testutil.AssertNoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "nested", "sales.png")
	testutil.AssertNoError(t, c.Save(path))
	info, err := os.Stat(path)
	testutil.AssertNoError(t, err)
	if info.Size() == 0 {
		t.Fatal("saved chart is empty")
	}
}

func TestSaveSVG(t *testing.T) {
	c, err := Bar("Sales", testLabels, testValues)
	testutil.AssertNoError(t, err)

	path := filepath.Join(t.TempDir(), "sales.svg")
	testutil.AssertNoError(t, c.Save(path))
	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("saved file is not SVG")
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	c, err := Bar("Sales", testLabels, testValues)
	testutil.AssertNoError(t, err)
	testutil.AssertError(t, c.Save(filepath.Join(t.TempDir(), "sales.gif")))
}
