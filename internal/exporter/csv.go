// Package exporter persists cleaned HR tables to disk.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cast"

	"hrinsights/pkg/contracts/domain"
)

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	// BOMPrefix writes a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// CSVWriter writes cleaned tables as CSV files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer. A nil logger falls back to
// slog.Default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteTable writes the table to path, creating parent directories as
// needed. Columns are written in the table's schema order; dates as
// YYYY-MM-DD, absent values as empty cells.
func (w *CSVWriter) WriteTable(path string, table *domain.Table, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", table.Len()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	record := make([]string, len(table.Columns))
	for i, row := range table.Rows {
		for j, column := range table.Columns {
			record[j] = FormatCell(row[column])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// FormatCell renders one cell value for tabular text output: dates as
// YYYY-MM-DD, floats with one decimal, absent values as the empty string.
func FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case domain.Date:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', 1, 64)
	default:
		return cast.ToString(value)
	}
}
