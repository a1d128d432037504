// Package loader reads raw HR datasets from disk into in-memory tables. It
// performs no cleaning beyond stripping encoding artifacts; all cell values
// are loaded as strings keyed by the raw header.
package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hrinsights/pkg/contracts/domain"
)

const utf8BOM = "\ufeff"

// Load reads a raw dataset, dispatching on the file extension (.csv or
// .xlsx).
func Load(path string) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadExcel(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadCSV reads a CSV file into a table. The first header is stripped of any
// UTF-8 byte-order-mark artifact. Rows shorter than the header are padded
// with absent values.
func LoadCSV(path string) (*domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	headers := stripBOM(records[0])
	table := tableFromRows(headers, records[1:])

	slog.Debug("Loaded CSV dataset",
		slog.String("path", path),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", table.Len()))
	return table, nil
}

// stripBOM removes a leading UTF-8 byte-order mark from the first header.
func stripBOM(headers []string) []string {
	if len(headers) == 0 {
		return headers
	}
	out := append([]string(nil), headers...)
	out[0] = strings.TrimPrefix(out[0], utf8BOM)
	return out
}

// tableFromRows builds a table of string cells from a header list and raw
// record slices.
func tableFromRows(headers []string, records [][]string) *domain.Table {
	table := domain.NewTable(headers)
	table.Rows = make([]domain.Row, 0, len(records))
	for _, record := range records {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = nil
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
