package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is a loosely-typed field bag: header cell -> value cell, both as the
// file carried them. Column-name casing varies between export tools, so
// consumers look fields up by candidate names rather than trusting one key.
type Row map[string]string

// Lookup returns the first non-empty value among the candidate column
// names. An exact key match wins; missing keys read as empty.
func (r Row) Lookup(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Parse reads the upload into header-keyed rows based on the file
// extension. CSV goes through encoding/csv; .xlsx and .xls go through
// excelize, first sheet only. Rows with no cells at all are skipped.
func Parse(filename string, reader io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(reader)
	case ".xlsx", ".xls":
		return parseExcel(reader)
	default:
		return nil, fmt.Errorf("spreadsheet: unsupported file type %q (want .csv, .xlsx or .xls)", filepath.Ext(filename))
	}
}

func parseCSV(reader io.Reader) ([]Row, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // ragged rows are common in hand-edited files
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to parse CSV: %w", err)
	}

	return tabulate(records), nil
}

func parseExcel(reader io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet: workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to read sheet %q: %w", sheets[0], err)
	}

	return tabulate(records), nil
}

// tabulate turns a header record plus data records into field bags.
func tabulate(records [][]string) []Row {
	if len(records) < 2 {
		return []Row{}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{}
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = strings.TrimSpace(cell)
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
