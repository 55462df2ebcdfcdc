package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independent(t *testing.T) {
	tbl := New([]string{"A", "B"})
	tbl.AppendRow([]string{"1", "2"})
	tbl.AppendRow([]string{"3", "4"})

	clone := tbl.Clone()
	clone.Rows[0][0] = "changed"

	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.Equal(t, tbl.Columns, clone.Columns)
	assert.Equal(t, tbl.NumRows(), clone.NumRows())
}

func TestAppendRow_PadsAndTruncates(t *testing.T) {
	tbl := New([]string{"A", "B", "C"})
	tbl.AppendRow([]string{"1"})
	tbl.AppendRow([]string{"1", "2", "3", "4"})

	require.Len(t, tbl.Rows[0], 3)
	require.Len(t, tbl.Rows[1], 3)
	assert.Equal(t, []string{"1", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Rows[1])
}

func TestColumnIndex(t *testing.T) {
	tbl := New([]string{"Site Name", "Certainty"})

	assert.Equal(t, 0, tbl.ColumnIndex("Site Name"))
	assert.Equal(t, 1, tbl.ColumnIndex("certainty"))
	assert.Equal(t, 1, tbl.ColumnIndex("CERTAINTY"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
}
