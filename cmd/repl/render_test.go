package main

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/bawdo/salescope/dataset"
	"github.com/bawdo/salescope/internal/testutil"
)

func TestRenderRecordsFooter(t *testing.T) {
	var buf bytes.Buffer
	records := [][]string{
		{"Region", "Sales"},
		{"East", "100"},
		{"West", "200"},
	}
	renderRecords(&buf, records, 2)
	out := buf.String()
	if !strings.Contains(out, "(2 rows)") {
		t.Errorf("missing footer:\n%s", out)
	}
	if !strings.Contains(out, "East") {
		t.Errorf("missing data row:\n%s", out)
	}
}

func TestRenderRecordsTruncates(t *testing.T) {
	records := [][]string{{"N"}}
	for i := 0; i < maxRows+10; i++ {
		records = append(records, []string{fmt.Sprintf("%d", i)})
	}
	var buf bytes.Buffer
	renderRecords(&buf, records, maxRows+10)
	out := buf.String()
	if !strings.Contains(out, fmt.Sprintf("showing first %d", maxRows)) {
		t.Errorf("missing truncation note:\n%s", out)
	}
}

func TestRenderRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderRecords(&buf, nil, 0)
	testutil.AssertEqual(t, strings.TrimSpace(buf.String()), "(empty)")
}

func TestRenderPivotMarksGaps(t *testing.T) {
	p := &dataset.Pivot{
		RowName: "Region",
		ColName: "Year",
		Rows:    []string{"East", "West"},
		Cols:    []string{"2023", "2024"},
		Cells:   [][]float64{{400, 0}, {600, 800}},
		Present: [][]bool{{true, false}, {true, true}},
	}
	var buf bytes.Buffer
	renderPivot(&buf, p)
	out := buf.String()
	if !strings.Contains(out, "400.00") {
		t.Errorf("missing cell value:\n%s", out)
	}
	if !strings.Contains(out, "-") {
		t.Errorf("absent cell should render as dash:\n%s", out)
	}
}

func TestFormatFloat(t *testing.T) {
	testutil.AssertEqual(t, formatFloat(1234.5), "1234.50")
	testutil.AssertEqual(t, formatFloat(math.NaN()), "NaN")
	testutil.AssertEqual(t, formatFloats([]float64{1, 2.5}), "[1.00, 2.50]")
}
