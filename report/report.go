// Package report renders validation reports and field mappings for the
// console and as CSV artifacts. It consumes the plain data structures
// the core produces and holds no logic of its own.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MAEASaM/shataba/resolver"
	"github.com/MAEASaM/shataba/validate"
)

// WriteValidation renders the validation report as an aligned text table.
func WriteValidation(w io.Writer, rep *validate.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Metric\tCount")
	fmt.Fprintf(tw, "Rows processed\t%d\n", rep.RowsProcessed)
	fmt.Fprintf(tw, "Columns checked\t%d\n", rep.ColumnsChecked)
	fmt.Fprintf(tw, "Offending values found\t%d\n", rep.OffendingFound)
	fmt.Fprintf(tw, "Offending values removed\t%d\n", rep.OffendingRemoved)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(rep.ColumnsMissing) > 0 {
		fmt.Fprintf(w, "\nResolved fields without a matching column: %s\n",
			strings.Join(rep.ColumnsMissing, ", "))
	}

	if rep.OffendingFound == 0 {
		fmt.Fprintln(w, "\nAll concept values are valid.")
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Column\tCategory\tOffending\tAcceptable\tSample offending")
	for _, cr := range rep.PerColumn {
		if cr.OffendingCount == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			cr.Column, cr.CategoryName, cr.OffendingCount, cr.AcceptableCount,
			strings.Join(cr.SampleOffending, "; "))
	}
	return tw.Flush()
}

// WriteMappingSummary renders the resolution chain statistics.
func WriteMappingSummary(w io.Writer, s resolver.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Metric\tCount\tPercentage")
	fmt.Fprintf(tw, "Concept fields\t%d\t%s\n", s.TotalFields, percentage(s.TotalFields, s.TotalFields))
	fmt.Fprintf(tw, "Fields with collection\t%d\t%s\n", s.WithCollection, percentage(s.WithCollection, s.TotalFields))
	fmt.Fprintf(tw, "Fields with label\t%d\t%s\n", s.WithLabel, percentage(s.WithLabel, s.TotalFields))
	fmt.Fprintf(tw, "Fields with category\t%d\t%s\n", s.WithCategory, percentage(s.WithCategory, s.TotalFields))
	return tw.Flush()
}

// WriteMappings renders the per-field mapping table.
func WriteMappings(w io.Writer, mappings []resolver.FieldMapping) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Field\tCollection\tLabel\tCategory\tAvailable concepts")
	for _, m := range mappings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.FieldName,
			orNA(m.CollectionID),
			orNA(m.Label),
			orNA(m.CategoryName),
			conceptCount(m))
	}
	return tw.Flush()
}

// WriteMappingsCSV writes the field-mapping table as CSV for the
// mappings artifact saved next to the cleaned data.
func WriteMappingsCSV(w io.Writer, mappings []resolver.FieldMapping) error {
	cw := csv.NewWriter(w)
	header := []string{"field_name", "node_id", "collection_id", "collection_label", "concept_category", "available_concepts"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write mappings header: %w", err)
	}
	for _, m := range mappings {
		record := []string{
			m.FieldName,
			m.NodeID,
			m.CollectionID,
			m.Label,
			m.CategoryName,
			strconv.Itoa(len(m.PermittedValues)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write mappings row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func conceptCount(m resolver.FieldMapping) string {
	if !m.Resolved() {
		return "N/A"
	}
	return strconv.Itoa(len(m.PermittedValues))
}

func percentage(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
