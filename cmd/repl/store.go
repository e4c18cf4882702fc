package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bawdo/salescope/dataset"
	"github.com/go-gota/gota/series"
	_ "modernc.org/sqlite"
)

// exportSQLite writes the table's rows into a SQLite database file,
// replacing any table of the same name. Returns the row count written.
func exportSQLite(t *dataset.Table, path, tableName string) (int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}

	cols := t.ColumnTypes()
	defs := make([]string, len(cols))
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, ct := range cols {
		defs[i] = quoteIdent(ct.Name) + " " + sqliteType(ct.Type)
		names[i] = quoteIdent(ct.Name)
		marks[i] = "?"
	}

	if _, err := db.Exec("DROP TABLE IF EXISTS " + quoteIdent(tableName)); err != nil {
		return 0, fmt.Errorf("drop table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(tableName), strings.Join(defs, ", "))
	if _, err := db.Exec(create); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(tableName), strings.Join(names, ", "), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	records := t.Records()
	count := 0
	for _, row := range records[1:] {
		args := make([]any, len(row))
		for i, cell := range row {
			if cell == "" || cell == "NaN" {
				args[i] = nil
			} else {
				args[i] = cell
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert row %d: %w", count+1, err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return count, nil
}

func sqliteType(t series.Type) string {
	switch t {
	case series.Int, series.Bool:
		return "INTEGER"
	case series.Float:
		return "REAL"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
