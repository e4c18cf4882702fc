package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bawdo/salescope/internal/testutil"
)

func TestCompleterSuggestsColumns(t *testing.T) {
	sess, _ := newTestSession(t)
	loadTestData(t, sess)
	c := &replCompleter{sess: sess}

	line := []rune("Reg")
	out, length := c.Do(line, len(line))
	testutil.AssertEqual(t, length, 3)
	found := false
	for _, suffix := range out {
		if string(suffix) == "ion" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected completion to Region, got %q", out)
	}
}

func TestCompleterCompletesLastWord(t *testing.T) {
	sess, _ := newTestSession(t)
	loadTestData(t, sess)
	c := &replCompleter{sess: sess}

	line := []rune("sort by sal")
	out, length := c.Do(line, len(line))
	testutil.AssertEqual(t, length, 3)
	// Candidates follow column order: SalesID before Sales.
	found := false
	for _, suffix := range out {
		if string(suffix) == "es" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected completion to Sales, got %q", out)
	}
}

func TestCompleterMultiByteColumn(t *testing.T) {
	sess, _ := newTestSession(t)
	path := filepath.Join(t.TempDir(), "units.csv")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("Größe,Sales\n10,100\n"), 0o644))
	testutil.AssertNoError(t, sess.Load(path))
	c := &replCompleter{sess: sess}

	line := []rune("grö")
	out, length := c.Do(line, len(line))
	testutil.AssertEqual(t, length, 3)
	if len(out) != 1 || string(out[0]) != "ße" {
		t.Errorf("expected completion to Größe, got %q", out)
	}
}

func TestCompleterNoDataset(t *testing.T) {
	sess, _ := newTestSession(t)
	c := &replCompleter{sess: sess}
	out, _ := c.Do([]rune("Reg"), 3)
	testutil.AssertEqual(t, len(out), 0)
}
