package dataset

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/series"
)

// isoDate is the canonical form Date values are normalised to.
const isoDate = "2006-01-02"

// dateLayouts are the accepted input forms, tried in order.
var dateLayouts = []string{
	isoDate,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// normalizeDates rewrites the Date column, when present, into isoDate
// form. Missing values are preserved; any other value that matches no
// accepted layout is an error.
func (t *Table) normalizeDates() error {
	if !t.HasColumn(DateColumnName) {
		return nil
	}
	records := t.df.Col(DateColumnName).Records()
	out := make([]string, len(records))
	for i, rec := range records {
		if rec == "" || rec == "NaN" {
			out[i] = rec
			continue
		}
		parsed, err := parseDate(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = parsed.Format(isoDate)
	}
	df := t.df.Mutate(series.New(out, series.String, DateColumnName))
	if df.Err != nil {
		return fmt.Errorf("normalize dates: %w", df.Err)
	}
	t.df = df
	return nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// Dates materialises the Date column as time values. Missing entries
// come back as zero times.
func (t *Table) Dates() ([]time.Time, error) {
	records, err := t.ColumnRecords(DateColumnName)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(records))
	for i, rec := range records {
		if rec == "" || rec == "NaN" {
			continue
		}
		ts, err := time.Parse(isoDate, rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = ts
	}
	return out, nil
}
