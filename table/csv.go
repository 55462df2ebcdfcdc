package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/MAEASaM/shataba/document"
)

// DefaultNullMarkers are the cell values treated as missing data and
// replaced with the empty string at read time.
var DefaultNullMarkers = []string{"N/A", "NA", "NaN", "null", "NULL", "None"}

// ReadCSV reads a table from CSV data. The first record is the header.
// Ragged rows are padded or truncated to the header width. Cells equal
// to one of the null markers are replaced with the empty string; pass
// nil to use DefaultNullMarkers.
func ReadCSV(path string, r io.Reader, nullMarkers []string) (*Table, error) {
	if nullMarkers == nil {
		nullMarkers = DefaultNullMarkers
	}
	nulls := make(map[string]struct{}, len(nullMarkers))
	for _, m := range nullMarkers {
		nulls[m] = struct{}{}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, document.NewParseError(path, fmt.Errorf("empty CSV input"))
	}
	if err != nil {
		return nil, document.NewParseError(path, err)
	}

	tbl := New(header)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, document.NewParseError(path, err)
		}
		for i, cell := range record {
			if _, ok := nulls[cell]; ok {
				record[i] = ""
			}
		}
		tbl.AppendRow(record)
	}
	return tbl, nil
}

// ReadCSVFile reads a table from a CSV file.
func ReadCSVFile(path string, nullMarkers []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ReadCSV(path, f, nullMarkers)
}

// WriteCSV writes the table as CSV, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to a CSV file.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
