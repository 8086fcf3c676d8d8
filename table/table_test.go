package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandezj1/QuantumRandomWalks/table"
)

// small helper: a 2-row table with Time plus two data columns.
func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"Time", "a", "b"},
		[][]table.Cell{
			{table.Number(0), table.Number(0.2), table.Number(0.5)},
			{table.Number(1), table.Number(0.8), table.Number(0.1)},
		},
	)
	require.NoError(t, err)

	return tbl
}

// TestNew_SchemaValidation covers each construction sentinel.
func TestNew_SchemaValidation(t *testing.T) {
	_, err := table.New(nil, nil)
	assert.ErrorIs(t, err, table.ErrNoColumns)

	_, err = table.New([]string{"Time", ""}, nil)
	assert.ErrorIs(t, err, table.ErrEmptyColumnName)

	_, err = table.New([]string{"Time", "a", "a"}, nil)
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)

	_, err = table.New([]string{"Time", "a"}, [][]table.Cell{{table.Number(0)}})
	assert.ErrorIs(t, err, table.ErrRowWidth)
}

// TestNew_CopiesInput verifies ownership: mutating the caller's slices after
// construction must not affect the table.
func TestNew_CopiesInput(t *testing.T) {
	cols := []string{"Time", "a"}
	rows := [][]table.Cell{{table.Number(0), table.Number(0.5)}}
	tbl, err := table.New(cols, rows)
	require.NoError(t, err)

	cols[1] = "mutated"
	rows[0][1] = table.Number(9)

	assert.Equal(t, []string{"Time", "a"}, tbl.Columns())
	c, err := tbl.At(0, "a")
	require.NoError(t, err)
	f, _ := c.Float()
	assert.Equal(t, 0.5, f)
}

// TestAccessors covers At/Row bounds and column lookups.
func TestAccessors(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, 3, tbl.ColumnCount())
	assert.Equal(t, 2, tbl.RowCount())

	i, ok := tbl.ColumnIndex("b")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = tbl.ColumnIndex("missing")
	assert.False(t, ok)

	_, err := tbl.At(5, "a")
	assert.ErrorIs(t, err, table.ErrRowIndex)
	_, err = tbl.At(0, "missing")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
	_, err = tbl.Row(-1)
	assert.ErrorIs(t, err, table.ErrRowIndex)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	f, ok := row[1].Float()
	assert.True(t, ok)
	assert.Equal(t, 0.8, f)

	// Row hands out a copy.
	row[1] = table.Number(42)
	c, err := tbl.At(1, "a")
	require.NoError(t, err)
	f, _ = c.Float()
	assert.Equal(t, 0.8, f)
}

// TestAppendRow verifies width checking and copy-in semantics.
func TestAppendRow(t *testing.T) {
	tbl := sampleTable(t)

	err := tbl.AppendRow([]table.Cell{table.Number(2)})
	assert.ErrorIs(t, err, table.ErrRowWidth)
	assert.Equal(t, 2, tbl.RowCount())

	cells := []table.Cell{table.Label("P-max"), table.Number(0.8), table.Number(0.5)}
	require.NoError(t, tbl.AppendRow(cells))
	assert.Equal(t, 3, tbl.RowCount())

	cells[1] = table.Number(0)
	c, err := tbl.At(2, "a")
	require.NoError(t, err)
	f, _ := c.Float()
	assert.Equal(t, 0.8, f, "AppendRow must copy the provided cells")

	c, err = tbl.At(2, "Time")
	require.NoError(t, err)
	s, ok := c.Text()
	assert.True(t, ok)
	assert.Equal(t, "P-max", s)
}

// TestSelect verifies projection order, independence, and unknown-column errors.
func TestSelect(t *testing.T) {
	tbl := sampleTable(t)

	sub, err := tbl.Select([]string{"Time", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Time", "b"}, sub.Columns())
	assert.Equal(t, 2, sub.RowCount())

	c, err := sub.At(0, "b")
	require.NoError(t, err)
	f, _ := c.Float()
	assert.Equal(t, 0.5, f)

	// Projection is independent of the source.
	require.NoError(t, sub.AppendRow([]table.Cell{table.Number(2), table.Number(0.3)}))
	assert.Equal(t, 2, tbl.RowCount())

	_, err = tbl.Select([]string{"Time", "missing"})
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
}

// TestRename verifies in-place renaming, order preservation, and the
// ignore-unknown policy.
func TestRename(t *testing.T) {
	tbl := sampleTable(t)

	tbl.Rename(map[string]string{"a": "0-1", "missing": "x"})
	assert.Equal(t, []string{"Time", "0-1", "b"}, tbl.Columns())

	c, err := tbl.At(1, "0-1")
	require.NoError(t, err)
	f, _ := c.Float()
	assert.Equal(t, 0.8, f, "row values must survive renaming")

	_, ok := tbl.ColumnIndex("a")
	assert.False(t, ok, "old name must be gone")
}

// TestClone verifies the deep copy.
func TestClone(t *testing.T) {
	tbl := sampleTable(t)
	cp := tbl.Clone()

	require.NoError(t, cp.AppendRow([]table.Cell{table.Number(2), table.Number(0.3), table.Number(0.4)}))
	cp.Rename(map[string]string{"a": "z"})

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"Time", "a", "b"}, tbl.Columns())
}

// TestCell covers the tagged accessors and String rendering.
func TestCell(t *testing.T) {
	n := table.Number(0.25)
	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 0.25, f)
	_, ok = n.Text()
	assert.False(t, ok)
	assert.False(t, n.IsLabel())
	assert.Equal(t, "0.25", n.String())

	l := table.Label("P-avg")
	s, ok := l.Text()
	assert.True(t, ok)
	assert.Equal(t, "P-avg", s)
	_, ok = l.Float()
	assert.False(t, ok)
	assert.True(t, l.IsLabel())
	assert.Equal(t, "P-avg", l.String())
}
