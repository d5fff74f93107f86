// Package table provides an ordered-column tabular record set for API
// responses. Column order is fixed at insertion and stable across rows;
// cells missing from a given record are nil.
package table

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Table is a rectangular record set with a stable column order.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]any
}

// New returns an empty table with the given columns.
func New(cols ...string) *Table {
	t := &Table{index: map[string]int{}}
	for _, c := range cols {
		t.addColumn(c)
	}
	return t
}

func (t *Table) addColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	t.cols = append(t.cols, name)
	t.index[name] = len(t.cols) - 1
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], nil)
	}
	return len(t.cols) - 1
}

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a record. order lists the record's keys in their original
// order; keys not yet present become new columns appended after the
// existing ones, so the table's column set is the insertion-ordered union
// of all rows.
func (t *Table) AppendRow(record map[string]any, order []string) {
	for _, k := range order {
		t.addColumn(k)
	}
	row := make([]any, len(t.cols))
	for k, v := range record {
		if i, ok := t.index[k]; ok {
			row[i] = v
		}
	}
	t.rows = append(t.rows, row)
}

// Value returns the cell at the given row for the named column.
func (t *Table) Value(row int, col string) (any, bool) {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	return t.rows[row][i], true
}

// Column returns all cells of the named column in row order.
func (t *Table) Column(name string) ([]any, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]any, len(t.rows))
	for r := range t.rows {
		out[r] = t.rows[r][i]
	}
	return out, true
}

// Clone returns a deep copy of the table structure. Cell values are copied
// by reference; transforms replace cells rather than mutating them.
func (t *Table) Clone() *Table {
	nt := &Table{
		cols:  make([]string, len(t.cols)),
		index: make(map[string]int, len(t.index)),
		rows:  make([][]any, len(t.rows)),
	}
	copy(nt.cols, t.cols)
	for k, v := range t.index {
		nt.index[k] = v
	}
	for r := range t.rows {
		row := make([]any, len(t.rows[r]))
		copy(row, t.rows[r])
		nt.rows[r] = row
	}
	return nt
}

// Rename returns a new table with columns renamed per the mapping. Columns
// absent from the mapping keep their names; order is preserved. A mapping
// whose target name is already taken, by an unmapped column or by an
// earlier rename, is skipped so column names stay unique.
func (t *Table) Rename(mapping map[string]string) *Table {
	nt := t.Clone()
	used := make(map[string]bool, len(nt.cols))
	for _, c := range nt.cols {
		if _, ok := mapping[c]; !ok {
			used[c] = true
		}
	}
	nt.index = make(map[string]int, len(nt.cols))
	for i, c := range nt.cols {
		if to, ok := mapping[c]; ok && !used[to] {
			nt.cols[i] = to
		}
		used[nt.cols[i]] = true
		nt.index[nt.cols[i]] = i
	}
	return nt
}

// Drop returns a new table without the named columns.
func (t *Table) Drop(names ...string) *Table {
	dropped := make(map[string]bool, len(names))
	for _, n := range names {
		dropped[n] = true
	}
	nt := &Table{index: map[string]int{}}
	keep := make([]int, 0, len(t.cols))
	for i, c := range t.cols {
		if dropped[c] {
			continue
		}
		keep = append(keep, i)
		nt.cols = append(nt.cols, c)
		nt.index[c] = len(nt.cols) - 1
	}
	nt.rows = make([][]any, len(t.rows))
	for r := range t.rows {
		row := make([]any, len(keep))
		for j, i := range keep {
			row[j] = t.rows[r][i]
		}
		nt.rows[r] = row
	}
	return nt
}

// Apply replaces each cell of the named column with fn(cell). No-op if the
// column does not exist.
func (t *Table) Apply(col string, fn func(any) any) {
	i, ok := t.index[col]
	if !ok {
		return
	}
	for r := range t.rows {
		t.rows[r][i] = fn(t.rows[r][i])
	}
}

// Records returns the rows as maps. Column order is not carried by the
// maps; use Columns for ordering.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, len(t.rows))
	for r := range t.rows {
		rec := make(map[string]any, len(t.cols))
		for i, c := range t.cols {
			rec[c] = t.rows[r][i]
		}
		out[r] = rec
	}
	return out
}

// MarshalJSON encodes the table as an array of objects with keys in column
// order. Encoding maps directly would sort keys and lose the order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r := range t.rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, c := range t.cols {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			cell := t.rows[r][i]
			if ts, ok := cell.(time.Time); ok {
				cell = ts.Format("2006-01-02")
			}
			val, err := json.Marshal(cell)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", c, r, err)
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
