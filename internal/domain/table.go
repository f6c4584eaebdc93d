package domain

import (
	"fmt"
	"slices"
)

// Table is an ordered collection of rows sharing a single column set.
// Cells are dynamically typed (string, float64, int, time.Time, Month,
// Weekday); nil marks a missing value. Columns are added and removed
// uniformly across all rows, never per-row.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// NewTable creates an empty table with the given column set.
func NewTable(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	return &Table{columns: slices.Clone(columns), index: index}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the positional index of a column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// AppendRow adds a row. The cell count must match the column set.
func (t *Table) AppendRow(cells []any) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, slices.Clone(cells))
	return nil
}

// Row returns the backing slice of row i. Mutations through it are visible
// to the table; callers that need a snapshot should clone it.
func (t *Table) Row(i int) []any {
	return t.rows[i]
}

// At returns the cell at (row, col).
func (t *Table) At(row, col int) any {
	return t.rows[row][col]
}

// Set writes the cell at (row, col).
func (t *Table) Set(row, col int, v any) {
	t.rows[row][col] = v
}

// AddColumn appends a column filled with the given value in every row and
// returns its index. Adding an existing column is an error.
func (t *Table) AddColumn(name string, fill any) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("column name is empty")
	}
	if _, dup := t.index[name]; dup {
		return 0, fmt.Errorf("column %q already exists", name)
	}
	i := len(t.columns)
	t.columns = append(t.columns, name)
	t.index[name] = i
	for j := range t.rows {
		t.rows[j] = append(t.rows[j], fill)
	}
	return i, nil
}

// DropColumn removes a column from every row. Dropping an absent column is
// a no-op; the return value reports whether the column existed.
func (t *Table) DropColumn(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.columns = slices.Delete(t.columns, i, i+1)
	delete(t.index, name)
	for name, j := range t.index {
		if j > i {
			t.index[name] = j - 1
		}
	}
	for j := range t.rows {
		t.rows[j] = slices.Delete(t.rows[j], i, i+1)
	}
	return true
}

// Filter retains only the rows for which keep returns true, preserving
// order, and returns the number of rows dropped.
func (t *Table) Filter(keep func(row []any) bool) int {
	kept := t.rows[:0]
	for _, row := range t.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	dropped := len(t.rows) - len(kept)
	t.rows = kept
	return dropped
}

// Clone returns a deep copy. The pipeline retains a clone of the raw input
// as an untouched reference while the working table is mutated in place.
func (t *Table) Clone() *Table {
	c := &Table{
		columns: slices.Clone(t.columns),
		index:   make(map[string]int, len(t.index)),
		rows:    make([][]any, len(t.rows)),
	}
	for name, i := range t.index {
		c.index[name] = i
	}
	for i, row := range t.rows {
		c.rows[i] = slices.Clone(row)
	}
	return c
}

// IsNull reports whether a cell holds a missing value.
func IsNull(v any) bool {
	return v == nil
}
