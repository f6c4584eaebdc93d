package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]any{"x", 1.0, nil}))
	require.NoError(t, tbl.AppendRow([]any{"y", 2.0, "z"}))
	return tbl
}

func TestNewTable(t *testing.T) {
	t.Run("rejects duplicate columns", func(t *testing.T) {
		_, err := NewTable([]string{"a", "a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects empty column name", func(t *testing.T) {
		_, err := NewTable([]string{"a", ""})
		require.Error(t, err)
	})
}

func TestTable_AppendRow(t *testing.T) {
	tbl := newTestTable(t)

	t.Run("rejects cell count mismatch", func(t *testing.T) {
		err := tbl.AppendRow([]any{"only-one"})
		require.Error(t, err)
	})

	t.Run("detaches from caller slice", func(t *testing.T) {
		cells := []any{"w", 3.0, nil}
		require.NoError(t, tbl.AppendRow(cells))
		cells[0] = "mutated"
		assert.Equal(t, "w", tbl.At(2, 0))
	})
}

func TestTable_AddColumn(t *testing.T) {
	tbl := newTestTable(t)

	idx, err := tbl.AddColumn("d", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tbl.Columns())
	for i := 0; i < tbl.NumRows(); i++ {
		assert.Nil(t, tbl.At(i, idx), "fill value in row %d", i)
	}

	_, err = tbl.AddColumn("d", nil)
	require.Error(t, err, "re-adding an existing column")
}

func TestTable_DropColumn(t *testing.T) {
	tbl := newTestTable(t)

	require.True(t, tbl.DropColumn("b"))
	assert.Equal(t, []string{"a", "c"}, tbl.Columns())

	// Indices of the surviving columns must be rebuilt.
	i, ok := tbl.ColumnIndex("c")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "z", tbl.At(1, i))

	t.Run("absent column is a no-op", func(t *testing.T) {
		assert.False(t, tbl.DropColumn("b"))
		assert.False(t, tbl.DropColumn("never-existed"))
		assert.Equal(t, []string{"a", "c"}, tbl.Columns())
	})
}

func TestTable_Filter(t *testing.T) {
	tbl := newTestTable(t)
	aIdx, _ := tbl.ColumnIndex("a")

	dropped := tbl.Filter(func(row []any) bool { return row[aIdx] == "y" })
	assert.Equal(t, 1, dropped)
	require.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, "y", tbl.At(0, aIdx))
}

func TestTable_Clone(t *testing.T) {
	tbl := newTestTable(t)
	clone := tbl.Clone()

	tbl.Set(0, 0, "changed")
	tbl.DropColumn("c")

	assert.Equal(t, "x", clone.At(0, 0), "clone cells independent")
	assert.Equal(t, []string{"a", "b", "c"}, clone.Columns(), "clone columns independent")
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull(0.0))
}
