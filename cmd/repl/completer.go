package main

import "strings"

// replCompleter completes column names of the loaded dataset, so that
// prompts asking for a column accept tab completion.
type replCompleter struct {
	sess *Session
}

func (c *replCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if c.sess == nil || c.sess.table == nil {
		return nil, 0
	}
	prefix := string(line[:pos])
	if i := strings.LastIndexAny(prefix, " \t"); i >= 0 {
		prefix = prefix[i+1:]
	}
	n := len([]rune(prefix))
	var out [][]rune
	for _, col := range c.sess.table.Columns() {
		runes := []rune(col)
		if len(runes) < n {
			continue
		}
		if strings.EqualFold(string(runes[:n]), prefix) {
			out = append(out, runes[n:])
		}
	}
	return out, n
}
