package validate

import (
	"testing"

	"github.com/MAEASaM/shataba/resolver"
	"github.com/MAEASaM/shataba/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func certaintyMapping() resolver.FieldMapping {
	return resolver.FieldMapping{
		FieldName:       "Certainty",
		CollectionID:    "11111111-2222-3333-4444-555555555555",
		Label:           "Certainty",
		CategoryName:    "Certainty",
		PermittedValues: []string{"Certain", "Probable"},
	}
}

func certaintyTable() *table.Table {
	tbl := table.New([]string{"Site", "Certainty"})
	tbl.AppendRow([]string{"A", "Certain"})
	tbl.AppendRow([]string{"B", "probable"})
	tbl.AppendRow([]string{"C", "maybe"})
	tbl.AppendRow([]string{"D", ""})
	return tbl
}

func TestClean_Scenario(t *testing.T) {
	tbl := certaintyTable()

	cleaned, rep := Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	// "probable" survives because it normalizes equal to "Probable".
	assert.Equal(t, "Certain", cleaned.Rows[0][1])
	assert.Equal(t, "probable", cleaned.Rows[1][1])
	assert.Equal(t, "", cleaned.Rows[2][1])
	assert.Equal(t, "", cleaned.Rows[3][1])

	assert.Equal(t, 4, rep.RowsProcessed)
	assert.Equal(t, 1, rep.ColumnsChecked)
	assert.Equal(t, 1, rep.OffendingFound)
	assert.Equal(t, 1, rep.OffendingRemoved)

	require.Len(t, rep.PerColumn, 1)
	cr := rep.PerColumn[0]
	assert.Equal(t, "Certainty", cr.Column)
	assert.Equal(t, "Certainty", cr.CategoryName)
	assert.Equal(t, 1, cr.OffendingCount)
	assert.Equal(t, 2, cr.AcceptableCount)
	assert.Equal(t, []string{"maybe"}, cr.SampleOffending)
	assert.Equal(t, []string{"Certain", "probable"}, cr.SampleAcceptable)
}

func TestClean_InputNotMutated(t *testing.T) {
	tbl := certaintyTable()

	_, _ = Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	assert.Equal(t, "maybe", tbl.Rows[2][1])
}

func TestClean_ShapePreserved(t *testing.T) {
	tbl := certaintyTable()

	cleaned, _ := Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	assert.Equal(t, tbl.Columns, cleaned.Columns)
	assert.Equal(t, tbl.NumRows(), cleaned.NumRows())
}

func TestClean_Idempotent(t *testing.T) {
	tbl := certaintyTable()
	mappings := []resolver.FieldMapping{certaintyMapping()}

	cleaned, _ := Clean(tbl, mappings)
	again, rep := Clean(cleaned, mappings)

	assert.Equal(t, 0, rep.OffendingFound)
	assert.Equal(t, cleaned.Rows, again.Rows)
}

func TestClean_UnresolvedMappingSkipped(t *testing.T) {
	tbl := certaintyTable()
	unresolved := resolver.FieldMapping{FieldName: "Certainty"}

	cleaned, rep := Clean(tbl, []resolver.FieldMapping{unresolved})

	// The field never resolved a permitted set, so the same-named column
	// is left untouched and excluded from the checked count.
	assert.Equal(t, 0, rep.ColumnsChecked)
	assert.Empty(t, rep.ColumnsMissing)
	assert.Equal(t, "maybe", cleaned.Rows[2][1])
}

func TestClean_MissingColumnReported(t *testing.T) {
	tbl := table.New([]string{"Site"})
	tbl.AppendRow([]string{"A"})

	_, rep := Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	assert.Equal(t, 0, rep.ColumnsChecked)
	assert.Equal(t, []string{"Certainty"}, rep.ColumnsMissing)
}

func TestClean_CaseInsensitiveColumnMatch(t *testing.T) {
	tbl := table.New([]string{"CERTAINTY"})
	tbl.AppendRow([]string{"maybe"})

	cleaned, rep := Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	assert.Equal(t, 1, rep.ColumnsChecked)
	assert.Equal(t, "", cleaned.Rows[0][0])
	assert.Equal(t, "CERTAINTY", rep.PerColumn[0].Column)
}

func TestClean_DuplicateFieldCheckedOnce(t *testing.T) {
	tbl := certaintyTable()
	m := certaintyMapping()

	_, rep := Clean(tbl, []resolver.FieldMapping{m, m})

	assert.Equal(t, 1, rep.ColumnsChecked)
	assert.Equal(t, 1, rep.OffendingFound)
}

func TestClean_SampleCap(t *testing.T) {
	tbl := table.New([]string{"Certainty"})
	for _, v := range []string{"w", "x", "y", "z", "Certain", "Certain", "certain", "CERTAIN"} {
		tbl.AppendRow([]string{v})
	}

	_, rep := Clean(tbl, []resolver.FieldMapping{certaintyMapping()})

	require.Len(t, rep.PerColumn, 1)
	assert.Equal(t, 4, rep.PerColumn[0].OffendingCount)
	assert.Equal(t, []string{"w", "x", "y"}, rep.PerColumn[0].SampleOffending)
	assert.Equal(t, []string{"Certain", "Certain", "certain"}, rep.PerColumn[0].SampleAcceptable)
}

func TestClean_NoMappings(t *testing.T) {
	tbl := certaintyTable()

	cleaned, rep := Clean(tbl, nil)

	assert.Equal(t, tbl.Rows, cleaned.Rows)
	assert.Equal(t, 4, rep.RowsProcessed)
	assert.Equal(t, 0, rep.ColumnsChecked)
	assert.Equal(t, 0, rep.OffendingFound)
}
