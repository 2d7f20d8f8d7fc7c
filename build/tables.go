package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const byteOrderMark = "\ufeff"

// table is a header plus data rows read from a tabular export
type table struct {
	columns map[string]int
	rows    [][]string
}

// newTable indexes the header row by column name
func newTable(header []string, rows [][]string) *table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return &table{columns: columns, rows: rows}
}

// field returns the named column of a row, or "" when the column or the
// field is missing
func (t *table) field(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// readTable loads a tabular file, choosing the backend by extension
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

// readCSV reads a comma separated file whose first record is the header
func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return newTable(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	return newTable(header, rows), nil
}

// readXLSX reads the first sheet of a workbook whose first row is the header
func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return newTable(nil, nil), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return newTable(nil, nil), nil
	}

	return newTable(rows[0], rows[1:]), nil
}
