package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// tableExtensions are tried in order when resolving a source table
var tableExtensions = []string{".csv", ".xlsx"}

// collectRecords reads every source table and combines their records
func (b *builder) collectRecords() ([]record, error) {
	var records []record

	for _, src := range sources {
		path, err := b.resolveSource(src)
		if err != nil {
			return nil, err
		}

		slog.Info("loading source", "file", path)
		rows, err := parseRows(path, src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", src.name, err)
		}

		for i := range rows {
			rows[i].Kind = src.kind
		}
		records = append(records, rows...)
	}

	return records, nil
}

// resolveSource finds the file backing a source table. A missing table is
// reported against its first candidate path.
func (b *builder) resolveSource(src source) (string, error) {
	var first error
	for _, ext := range tableExtensions {
		path := filepath.Join(b.srcDir, src.name+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
		if first == nil {
			first = err
		}
	}
	return "", fmt.Errorf("source %s not found: %w", src.name, first)
}

// parseRows reads a tabular file laid out as src and returns its records in
// file order. Rows with an empty or malformed date are skipped.
func parseRows(path string, src source) ([]record, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(t.rows))
	for _, row := range t.rows {
		date := strings.TrimSpace(t.field(row, src.dateCol))
		if date == "" {
			continue
		}

		// time.Parse accepts fractional seconds the layout does not name
		ts, err := time.Parse(sourceDateLayout, date)
		if err != nil || ts.Format(sourceDateLayout) != date {
			continue
		}

		records = append(records, record{
			Timestamp:  ts,
			Text:       strings.TrimSpace(t.field(row, src.textCol)),
			Link:       strings.TrimSpace(t.field(row, src.linkCol)),
			SharedLink: strings.TrimSpace(t.field(row, src.sharedCol)),
		})
	}

	return records, nil
}
