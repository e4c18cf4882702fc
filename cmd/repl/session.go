package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/salescope/charts"
	"github.com/bawdo/salescope/dataset"
	"github.com/ergochat/readline"
)

// ErrNoDataset is returned by every data-touching operation invoked
// before a successful load.
var ErrNoDataset = errors.New("no dataset loaded (load one with option 1 first)")

// ExploreMode selects what Explore prints.
type ExploreMode int

const (
	ExploreHead ExploreMode = iota
	ExploreTail
	ExploreColumns
	ExploreTypes
	ExploreInfo
)

// CleanMode selects which missing-data treatment Clean applies.
type CleanMode int

const (
	CleanList CleanMode = iota
	CleanFillMean
	CleanDrop
	CleanReplace
)

// ChartKind selects one of the nine visualizations.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartLine
	ChartScatter
	ChartPie
	ChartBox
	ChartHistogram
	ChartViolin
	ChartStacked
	ChartStep
)

// fillMeanColumns is the fixed pair the mean-fill treatment targets.
var fillMeanColumns = []string{"Sales", "Profit"}

// Session holds the explorer state: at most one loaded dataset and at
// most one not-yet-saved chart. Operation methods take explicit
// arguments; the interactive collection of those arguments lives in
// Dispatch and its sub-menu handlers.
type Session struct {
	table *dataset.Table
	chart *charts.Chart
	rl    *readline.Instance
	out   io.Writer

	// display renders a freshly built chart synchronously and returns
	// a human-readable location. Overridable in tests.
	display func(*charts.Chart) (string, error)
}

// NewSession creates a session writing to stdout.
func NewSession(rl *readline.Instance) *Session {
	return &Session{
		rl:      rl,
		out:     os.Stdout,
		display: previewChart,
	}
}

// previewChart renders the chart to a PNG file in the temp directory,
// the console stand-in for an on-screen figure window.
func previewChart(c *charts.Chart) (string, error) {
	f, err := os.CreateTemp("", "salescope-preview-*.png")
	if err != nil {
		return "", err
	}
	if err := c.WritePNG(f); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func (s *Session) requireData() error {
	if s.table == nil {
		return ErrNoDataset
	}
	return nil
}

// Dispatch routes a top-level menu command, collecting any sub-choices
// and free-text parameters it needs. Every data-touching command is
// refused until a load succeeds.
func (s *Session) Dispatch(cmd command) error {
	if cmd != cmdLoad && cmd != cmdExit {
		if err := s.requireData(); err != nil {
			return err
		}
	}

	switch cmd {
	case cmdLoad:
		path := prompt(s.rl, "Enter the path of the dataset (CSV file)", "")
		if path == "" {
			return errors.New("no path given")
		}
		return s.Load(path)

	case cmdExplore:
		printSubMenu(s.out, "Explore Data", exploreMenu)
		n, err := s.subChoice(len(exploreMenu))
		if err != nil {
			return err
		}
		return s.Explore(ExploreMode(n - 1))

	case cmdOperations:
		return s.dispatchOperations()

	case cmdMissing:
		printSubMenu(s.out, "Handle Missing Data", missingMenu)
		n, err := s.subChoice(len(missingMenu))
		if err != nil {
			return err
		}
		mode := CleanMode(n - 1)
		value := ""
		if mode == CleanReplace {
			value = prompt(s.rl, "Enter value to replace missing values", "")
		}
		return s.Clean(mode, value)

	case cmdStatistics:
		return s.Statistics()

	case cmdVisualize:
		printSubMenu(s.out, "Data Visualization", visualizeMenu)
		n, err := s.subChoice(len(visualizeMenu))
		if err != nil {
			return err
		}
		kind := ChartKind(n - 1)
		var xCol, yCol string
		if kind == ChartScatter {
			xCol = prompt(s.rl, "Enter x-axis column name", "")
			yCol = prompt(s.rl, "Enter y-axis column name", "")
		}
		return s.Visualize(kind, xCol, yCol)

	case cmdSaveChart:
		name := prompt(s.rl, "Enter file name to save the plot (e.g., scatter.png)", "")
		if name == "" {
			return errors.New("no file name given")
		}
		return s.SaveChart(name)

	case cmdExit:
		return nil
	}
	return fmt.Errorf("unknown command %d", cmd)
}

func (s *Session) dispatchOperations() error {
	printSubMenu(s.out, "DataFrame Operations", operationsMenu)
	n, err := s.subChoice(len(operationsMenu))
	if err != nil {
		return err
	}
	switch n {
	case 1:
		return s.NumericOps()
	case 2:
		path := prompt(s.rl, "Enter path of another CSV file to combine", "")
		if path == "" {
			return errors.New("no path given")
		}
		return s.Combine(path)
	case 3:
		criterion := prompt(s.rl, "Enter column to split by (e.g., Region)", "Region")
		return s.Split(criterion)
	case 4:
		printSubMenu(s.out, "Search, Sort, Filter", searchSortFilterMenu)
		op, err := s.subChoice(len(searchSortFilterMenu))
		if err != nil {
			return err
		}
		switch op {
		case 1:
			col := prompt(s.rl, "Enter column to search (e.g., Region)", "")
			value := prompt(s.rl, "Enter value to search for", "")
			return s.Search(col, value)
		case 2:
			col := prompt(s.rl, "Enter column to sort by (e.g., Sales)", "")
			asc := strings.EqualFold(prompt(s.rl, "Sort ascending? (y/n)", "y"), "y")
			return s.Sort(col, asc)
		default:
			col := prompt(s.rl, "Enter column to filter (e.g., Region)", "")
			value := prompt(s.rl, "Enter value to filter by", "")
			return s.Filter(col, value)
		}
	case 5:
		return s.Aggregate()
	case 6:
		return s.Pivot()
	default:
		path := prompt(s.rl, "Enter SQLite file path", "sales.db")
		table := prompt(s.rl, "Enter table name", "sales")
		return s.Export(path, table)
	}
}

func (s *Session) subChoice(max int) (int, error) {
	return parseChoice(prompt(s.rl, "Enter your choice", ""), max)
}

// Load reads a new dataset, replacing any previous dataset and
// discarding any held chart. Failure leaves both untouched.
func (s *Session) Load(path string) error {
	t, err := dataset.Load(path)
	if err != nil {
		return err
	}
	if s.table != nil {
		fmt.Fprintln(s.out, "  Previous dataset and chart discarded")
	}
	s.table = t
	s.chart = nil
	fmt.Fprintf(s.out, "  Dataset loaded: %d rows × %d columns\n", t.Nrow(), t.Ncol())
	return nil
}

// Explore prints a read-only view of the dataset.
func (s *Session) Explore(mode ExploreMode) error {
	if err := s.requireData(); err != nil {
		return err
	}
	switch mode {
	case ExploreHead:
		fmt.Fprintln(s.out, "  First 5 rows:")
		renderFrame(s.out, s.table.Head(5))
	case ExploreTail:
		fmt.Fprintln(s.out, "  Last 5 rows:")
		renderFrame(s.out, s.table.Tail(5))
	case ExploreColumns:
		fmt.Fprintf(s.out, "  Columns: %s\n", strings.Join(s.table.Columns(), ", "))
	case ExploreTypes:
		for _, ct := range s.table.ColumnTypes() {
			fmt.Fprintf(s.out, "  %-12s %s\n", ct.Name, ct.Type)
		}
	case ExploreInfo:
		s.table.Info(s.out)
	default:
		return fmt.Errorf("unknown explore mode %d", mode)
	}
	return nil
}

// Clean applies one missing-data treatment per call. value is only
// used by CleanReplace.
func (s *Session) Clean(mode CleanMode, value string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	switch mode {
	case CleanList:
		missing := s.table.MissingRows()
		if missing.Nrow() == 0 {
			fmt.Fprintln(s.out, "  No missing values found")
			return nil
		}
		fmt.Fprintf(s.out, "  Rows with missing values:\n")
		renderFrame(s.out, missing)
	case CleanFillMean:
		filled, err := s.table.FillMeanColumns(fillMeanColumns...)
		if err != nil {
			return err
		}
		if len(filled) == 0 {
			fmt.Fprintln(s.out, "  Nothing to fill: target columns are complete or absent")
			return nil
		}
		fmt.Fprintf(s.out, "  Filled missing values with the column mean in: %s\n", strings.Join(filled, ", "))
	case CleanDrop:
		n := s.table.DropMissing()
		fmt.Fprintf(s.out, "  Dropped %d rows with missing values\n", n)
	case CleanReplace:
		if value == "" {
			return errors.New("no replacement value given")
		}
		if err := s.table.FillAll(value); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "  Missing values replaced with %q\n", value)
	default:
		return fmt.Errorf("unknown clean mode %d", mode)
	}
	return nil
}

// NumericOps reports element-wise and reduced views of the Sales and
// Profit columns.
func (s *Session) NumericOps() error {
	if err := s.requireData(); err != nil {
		return err
	}
	sales, err := s.table.ColumnFloats("Sales")
	if err != nil {
		return err
	}
	profit, err := s.table.ColumnFloats("Profit")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  First 5 sales values:    %s\n", formatFloats(dataset.FirstN(sales, 5)))
	fmt.Fprintf(s.out, "  Last 5 profit values:    %s\n", formatFloats(dataset.LastN(profit, 5)))
	fmt.Fprintf(s.out, "  Sales doubled:           %s\n", formatFloats(dataset.Scale(sales, 2)))
	fmt.Fprintf(s.out, "  Profit increased by 10%%: %s\n", formatFloats(dataset.Scale(profit, 1.1)))

	salesSample, _ := s.table.Sample("Sales")
	profitSample, _ := s.table.Sample("Profit")
	fmt.Fprintf(s.out, "  Total sales:             %s\n", formatFloat(salesSample.Sum()))
	fmt.Fprintf(s.out, "  Average profit:          %s\n", formatFloat(profitSample.Mean()))
	return nil
}

// Combine appends the rows of another CSV file to the dataset.
func (s *Session) Combine(path string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	added, err := s.table.Combine(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Combined %d rows: now %d rows × %d columns\n",
		added, s.table.Nrow(), s.table.Ncol())
	return nil
}

// Split prints one sub-table per distinct value of the criterion
// column. The grouping is transient; nothing is retained.
func (s *Session) Split(criterion string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	keys, groups, err := s.table.Split(criterion)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Split into %d groups by %s\n", len(keys), criterion)
	for _, key := range keys {
		fmt.Fprintf(s.out, "  %s = %q (%d rows):\n", criterion, key, groups[key].Nrow())
		renderFrame(s.out, groups[key])
	}
	return nil
}

// Search prints rows whose column contains the value, case-insensitive.
func (s *Session) Search(col, value string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	result, err := s.table.Search(col, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Search results (%d rows):\n", result.Nrow())
	renderFrame(s.out, result)
	return nil
}

// Sort orders the dataset by a column, in place, and shows the head.
func (s *Session) Sort(col string, ascending bool) error {
	if err := s.requireData(); err != nil {
		return err
	}
	if err := s.table.SortBy(col, ascending); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "  Data sorted:")
	renderFrame(s.out, s.table.Head(5))
	return nil
}

// Filter prints rows whose column equals the value exactly.
func (s *Session) Filter(col, value string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	result, err := s.table.FilterEq(col, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Filtered data (%d rows):\n", result.Nrow())
	renderFrame(s.out, result)
	return nil
}

// Aggregate reports totals over the fixed sales columns.
func (s *Session) Aggregate() error {
	if err := s.requireData(); err != nil {
		return err
	}
	report, err := s.table.Aggregate()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "  Aggregated statistics:")
	fmt.Fprintf(s.out, "    Total Sales:   %s\n", formatFloat(report.TotalSales))
	fmt.Fprintf(s.out, "    Average Sales: %s\n", formatFloat(report.MeanSales))
	fmt.Fprintf(s.out, "    Total Profit:  %s\n", formatFloat(report.TotalProfit))
	fmt.Fprintf(s.out, "    Records:       %d\n", report.Records)
	return nil
}

// Statistics reports the descriptive summary of Sales plus spread
// measures of Sales and Profit.
func (s *Session) Statistics() error {
	if err := s.requireData(); err != nil {
		return err
	}
	summary, err := s.table.Describe("Sales")
	if err != nil {
		return err
	}
	profitStd, err := s.table.StdDev("Profit")
	if err != nil {
		return err
	}
	salesVar, err := s.table.Variance("Sales")
	if err != nil {
		return err
	}
	q25, err := s.table.Percentile("Sales", 0.25)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "  Statistical analysis:")
	fmt.Fprintf(s.out, "    Sales count:  %d\n", summary.Count)
	fmt.Fprintf(s.out, "    Sales mean:   %s\n", formatFloat(summary.Mean))
	fmt.Fprintf(s.out, "    Sales std:    %s\n", formatFloat(summary.StdDev))
	fmt.Fprintf(s.out, "    Sales min:    %s\n", formatFloat(summary.Min))
	fmt.Fprintf(s.out, "    Sales 25%%:    %s\n", formatFloat(summary.Q1))
	fmt.Fprintf(s.out, "    Sales median: %s\n", formatFloat(summary.Median))
	fmt.Fprintf(s.out, "    Sales 75%%:    %s\n", formatFloat(summary.Q3))
	fmt.Fprintf(s.out, "    Sales max:    %s\n", formatFloat(summary.Max))
	fmt.Fprintf(s.out, "    Profit std deviation: %s\n", formatFloat(profitStd))
	fmt.Fprintf(s.out, "    Sales variance:       %s\n", formatFloat(salesVar))
	fmt.Fprintf(s.out, "    Sales 25th percentile: %s\n", formatFloat(q25))
	return nil
}

// Pivot prints the Region × Year summed-Sales table.
func (s *Session) Pivot() error {
	if err := s.requireData(); err != nil {
		return err
	}
	p, err := s.table.PivotSales()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "  Pivot table (Sales by Region and Year):")
	renderPivot(s.out, p)
	return nil
}

// Visualize builds and displays a chart, storing it as the current
// chart. Any prior unsaved chart is silently discarded.
func (s *Session) Visualize(kind ChartKind, xCol, yCol string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	c, err := s.buildChart(kind, xCol, yCol)
	if err != nil {
		return err
	}
	location, err := s.display(c)
	if err != nil {
		return fmt.Errorf("display chart: %w", err)
	}
	s.chart = c
	if location != "" {
		fmt.Fprintf(s.out, "  Chart displayed (preview: %s)\n", location)
	} else {
		fmt.Fprintln(s.out, "  Chart displayed")
	}
	return nil
}

func (s *Session) buildChart(kind ChartKind, xCol, yCol string) (*charts.Chart, error) {
	t := s.table
	switch kind {
	case ChartBar:
		regions, sums, err := t.SumBy("Region", "Sales")
		if err != nil {
			return nil, err
		}
		return charts.Bar("Sales by Region", regions, sums)

	case ChartLine, ChartStep:
		xs, ys, err := s.salesByDate()
		if err != nil {
			return nil, err
		}
		if kind == ChartStep {
			return charts.StepLine("Sales Trend (Step Chart)", xs, ys)
		}
		return charts.TimeLine("Sales Trend Over Time", xs, ys)

	case ChartScatter:
		xs, err := t.ColumnFloats(xCol)
		if err != nil {
			return nil, err
		}
		ys, err := t.ColumnFloats(yCol)
		if err != nil {
			return nil, err
		}
		return charts.Scatter(fmt.Sprintf("%s vs %s", yCol, xCol), xCol, yCol, xs, ys)

	case ChartPie:
		regions, sums, err := t.SumBy("Region", "Sales")
		if err != nil {
			return nil, err
		}
		return charts.Pie("Sales Distribution by Region", regions, sums)

	case ChartBox:
		regions, groups, err := t.GroupFloats("Region", "Sales")
		if err != nil {
			return nil, err
		}
		return charts.Box("Sales Distribution by Region", regions, groups)

	case ChartHistogram:
		sales, err := t.ColumnFloats("Sales")
		if err != nil {
			return nil, err
		}
		return charts.Histogram("Sales Distribution", sales, 20)

	case ChartViolin:
		regions, groups, err := t.GroupFloats("Region", "Sales")
		if err != nil {
			return nil, err
		}
		return charts.Violin("Sales Distribution by Region", regions, groups)

	case ChartStacked:
		p, err := t.PivotSum("Region", "Year", "Sales")
		if err != nil {
			return nil, err
		}
		years := make([]float64, len(p.Cols))
		for i, y := range p.Cols {
			f, err := strconv.ParseFloat(y, 64)
			if err != nil {
				return nil, fmt.Errorf("year %q is not numeric", y)
			}
			years[i] = f
		}
		return charts.StackedArea("Sales by Region Over Years", years, p.Rows, p.Cells)

	default:
		return nil, fmt.Errorf("unknown chart kind %d", kind)
	}
}

// salesByDate sums Sales per distinct Date, in date order.
func (s *Session) salesByDate() ([]time.Time, []float64, error) {
	// ISO-normalised dates sort correctly as strings.
	dates, sums, err := s.table.SumBy(dataset.DateColumnName, "Sales")
	if err != nil {
		return nil, nil, err
	}
	xs := make([]time.Time, len(dates))
	for i, d := range dates {
		ts, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, nil, fmt.Errorf("date %q: %w", d, err)
		}
		xs[i] = ts
	}
	return xs, sums, nil
}

// SaveChart writes the current chart to disk, releasing it on success.
// A failed write keeps the chart for a retry.
func (s *Session) SaveChart(path string) error {
	if s.chart == nil {
		return errors.New("no chart to save: generate one first")
	}
	if err := s.chart.Save(path); err != nil {
		return err
	}
	s.chart = nil
	fmt.Fprintf(s.out, "  Visualization saved as %s\n", path)
	return nil
}

// Export writes the dataset into a SQLite database file.
func (s *Session) Export(path, table string) error {
	if err := s.requireData(); err != nil {
		return err
	}
	n, err := exportSQLite(s.table, path, table)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  Exported %d rows to %s (table %q)\n", n, path, table)
	return nil
}
