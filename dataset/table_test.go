package dataset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bawdo/salescope/internal/testutil"
)

const salesCSV = `SalesID,Date,Region,Sales,Profit,Year
1,2023-01-05,East,100,10,2023
2,2023-01-06,West,200,20,2023
3,2023-01-07,East,300,30,2023
4,2023-01-08,West,400,40,2023
5,2023-01-09,East,500,50,2024
6,2023-01-10,West,,60,2024
7,2023-01-11,East,700,,2024
8,2023-01-12,West,800,80,2024
9,2023-01-13,East,900,90,2024
10,2023-01-14,East,1000,100,2024
`

func loadSales(t *testing.T) *Table {
	t.Helper()
	table, err := ReadCSV(strings.NewReader(salesCSV))
	testutil.AssertNoError(t, err)
	return table
}

func TestReadCSVDimensions(t *testing.T) {
	table := loadSales(t)
	testutil.AssertEqual(t, table.Nrow(), 10)
	testutil.AssertEqual(t, table.Ncol(), 6)
	testutil.AssertEqual(t, strings.Join(table.Columns(), ","), "SalesID,Date,Region,Sales,Profit,Year")
}

func TestReadCSVRejectsEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	testutil.AssertError(t, err)
}

func TestDateNormalization(t *testing.T) {
	csv := `Date,Sales
2023-01-05,100
2023/01/06,200
01/07/2023,300
`
	table, err := ReadCSV(strings.NewReader(csv))
	testutil.AssertNoError(t, err)
	dates, err := table.ColumnRecords("Date")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, dates[0], "2023-01-05")
	testutil.AssertEqual(t, dates[1], "2023-01-06")
	testutil.AssertEqual(t, dates[2], "2023-01-07")
}

func TestDateNormalizationRejectsGarbage(t *testing.T) {
	csv := `Date,Sales
not-a-date,100
`
	_, err := ReadCSV(strings.NewReader(csv))
	testutil.AssertError(t, err)
}

func TestDates(t *testing.T) {
	table := loadSales(t)
	dates, err := table.Dates()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(dates), 10)
	testutil.AssertEqual(t, dates[0], time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC))
}

func TestHeadAndTail(t *testing.T) {
	table := loadSales(t)

	head := table.Head(5)
	testutil.AssertEqual(t, head.Nrow(), 5)
	testutil.AssertEqual(t, head.Records()[1][0], "1")

	tail := table.Tail(3)
	testutil.AssertEqual(t, tail.Nrow(), 3)
	testutil.AssertEqual(t, tail.Records()[1][0], "8")

	// Asking for more rows than exist returns everything.
	testutil.AssertEqual(t, table.Head(100).Nrow(), 10)
	testutil.AssertEqual(t, table.Tail(100).Nrow(), 10)
}

func TestColumnTypes(t *testing.T) {
	table := loadSales(t)
	byName := map[string]string{}
	for _, ct := range table.ColumnTypes() {
		byName[ct.Name] = string(ct.Type)
	}
	testutil.AssertEqual(t, byName["SalesID"], "int")
	testutil.AssertEqual(t, byName["Region"], "string")
	testutil.AssertEqual(t, byName["Date"], "string")
}

func TestInfo(t *testing.T) {
	table := loadSales(t)
	var buf bytes.Buffer
	table.Info(&buf)
	out := buf.String()
	if !strings.Contains(out, "10 rows × 6 columns") {
		t.Errorf("info missing dimensions line:\n%s", out)
	}
	if !strings.Contains(out, "9 non-null") {
		t.Errorf("info missing non-null count for incomplete column:\n%s", out)
	}
}

func TestColumnFloatsUnknownColumn(t *testing.T) {
	table := loadSales(t)
	_, err := table.ColumnFloats("Revenue")
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "Revenue") {
		t.Errorf("error should name the missing column: %v", err)
	}
}
