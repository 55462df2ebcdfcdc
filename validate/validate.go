// Package validate applies resolved field mappings across a tabular
// dataset, producing a cleaned copy and a structured report.
package validate

import (
	"github.com/MAEASaM/shataba/normalize"
	"github.com/MAEASaM/shataba/resolver"
	"github.com/MAEASaM/shataba/table"
)

// maxSamples caps the example values recorded per column report entry.
const maxSamples = 3

// ColumnReport accumulates per-column validation results.
type ColumnReport struct {
	// Column is the column header as it appears in the input table.
	Column string
	// CategoryName is the concept category the column was checked against.
	CategoryName string
	// OffendingCount is the number of cells removed.
	OffendingCount int
	// AcceptableCount is the number of cells that matched a permitted value.
	AcceptableCount int
	// SampleOffending holds up to three offending original values in
	// first-seen order.
	SampleOffending []string
	// SampleAcceptable holds up to three acceptable original values in
	// first-seen order.
	SampleAcceptable []string
}

// Report is the structured result of one validation run.
type Report struct {
	RowsProcessed  int
	ColumnsChecked int
	OffendingFound int
	// OffendingRemoved always equals OffendingFound: removal is
	// unconditional once a value is classified offending.
	OffendingRemoved int
	// ColumnsMissing lists resolved fields that had no matching column
	// in the input. They are excluded from ColumnsChecked and are not an
	// error.
	ColumnsMissing []string
	// PerColumn follows the field-mapping order.
	PerColumn []ColumnReport
}

// Clean validates the table against the resolved field mappings and
// returns a cleaned copy plus the report. The input table is never
// mutated.
//
// Only columns whose name case-insensitively matches a mapping with a
// resolved permitted value set are checked; each column is checked at
// most once even when duplicate field names map to it. Offending cells
// become the empty string in the copy; cells that normalize to empty
// pass through untouched. Column processing follows mapping order and
// cell processing follows row order, so identical inputs produce
// byte-identical output.
func Clean(tbl *table.Table, mappings []resolver.FieldMapping) (*table.Table, *Report) {
	out := tbl.Clone()
	rep := &Report{RowsProcessed: tbl.NumRows()}

	checked := make(map[int]bool, len(mappings))
	for _, m := range mappings {
		if !m.Resolved() {
			continue
		}

		col := tbl.ColumnIndex(m.FieldName)
		if col < 0 {
			rep.ColumnsMissing = append(rep.ColumnsMissing, m.FieldName)
			continue
		}
		if checked[col] {
			continue
		}
		checked[col] = true

		matcher := normalize.NewMatcher(m.PermittedValues)
		cr := ColumnReport{
			Column:       tbl.Columns[col],
			CategoryName: m.CategoryName,
		}
		for i, row := range tbl.Rows {
			switch matcher.Match(row[col]) {
			case normalize.Member:
				cr.AcceptableCount++
				if len(cr.SampleAcceptable) < maxSamples {
					cr.SampleAcceptable = append(cr.SampleAcceptable, row[col])
				}
			case normalize.Offending:
				cr.OffendingCount++
				if len(cr.SampleOffending) < maxSamples {
					cr.SampleOffending = append(cr.SampleOffending, row[col])
				}
				out.Rows[i][col] = ""
			}
		}

		rep.ColumnsChecked++
		rep.OffendingFound += cr.OffendingCount
		rep.PerColumn = append(rep.PerColumn, cr)
	}

	rep.OffendingRemoved = rep.OffendingFound
	return out, rep
}
