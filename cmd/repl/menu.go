package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// command enumerates the top-level menu leaves. Dispatch switches over
// it exhaustively, so an unmapped value is a programming error rather
// than a silently ignored selection.
type command int

const (
	cmdLoad command = iota
	cmdExplore
	cmdOperations
	cmdMissing
	cmdStatistics
	cmdVisualize
	cmdSaveChart
	cmdExit
)

type menuOption struct {
	label string
	cmd   command
}

type menu struct {
	title   string
	options []menuOption
}

var mainMenu = menu{
	title: "Data Analysis & Visualization",
	options: []menuOption{
		{"Load Dataset", cmdLoad},
		{"Explore Data", cmdExplore},
		{"Perform DataFrame Operations", cmdOperations},
		{"Handle Missing Data", cmdMissing},
		{"Generate Descriptive Statistics", cmdStatistics},
		{"Data Visualization", cmdVisualize},
		{"Save Visualization", cmdSaveChart},
		{"Exit", cmdExit},
	},
}

// Sub-menus are plain label lists; the selected index maps directly to
// the corresponding mode constant.
var exploreMenu = []string{
	"Display the first 5 rows",
	"Display the last 5 rows",
	"Display column names",
	"Display data types",
	"Display basic info",
}

var operationsMenu = []string{
	"Mathematical Operations",
	"Combine Data",
	"Split Data",
	"Search, Sort, Filter",
	"Aggregate Functions",
	"Create Pivot Table",
	"Export to SQLite",
}

var searchSortFilterMenu = []string{
	"Search",
	"Sort",
	"Filter",
}

var missingMenu = []string{
	"Display rows with missing values",
	"Fill missing values with mean",
	"Drop rows with missing values",
	"Replace missing values with a specific value",
}

var visualizeMenu = []string{
	"Bar Plot",
	"Line Plot",
	"Scatter Plot",
	"Pie Chart",
	"Box Plot",
	"Histogram",
	"Violin Plot",
	"Stack Plot",
	"Step Chart",
}

var menuHeading = color.New(color.FgCyan, color.Bold)

// printMenu writes a numbered menu with a coloured heading.
func printMenu(w io.Writer, m menu) {
	fmt.Fprintln(w)
	_, _ = menuHeading.Fprintln(w, m.title)
	for i, opt := range m.options {
		fmt.Fprintf(w, "%d. %s\n", i+1, opt.label)
	}
}

// printSubMenu writes a numbered list of labels under a heading.
func printSubMenu(w io.Writer, title string, labels []string) {
	fmt.Fprintln(w)
	_, _ = menuHeading.Fprintln(w, title)
	for i, label := range labels {
		fmt.Fprintf(w, "%d. %s\n", i+1, label)
	}
}

// parseChoice turns a menu selection into a 1-based index, rejecting
// non-numeric and out-of-range input.
func parseChoice(input string, max int) (int, error) {
	input = trimmed(input)
	if input == "" {
		return 0, fmt.Errorf("enter a number between 1 and %d", max)
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: enter a number", input)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("choice %d out of range (1-%d)", n, max)
	}
	return n, nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
