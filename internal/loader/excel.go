package loader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"hrinsights/pkg/contracts/domain"
)

// headerHints are lowercase substrings expected somewhere in a real HR
// header row. Sheet probing picks the first sheet whose first row matches.
var headerHints = []string{"id", "hire"}

// LoadExcel reads an HR dataset from an .xlsx workbook. HRIS exports often
// carry cover or notes sheets, so the data sheet is found by probing each
// sheet's first row for recognizable headers rather than trusting the sheet
// order blindly.
func LoadExcel(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string
	for _, name := range f.GetSheetList() {
		candidate, err := f.GetRows(name)
		if err != nil || len(candidate) < 2 {
			continue
		}
		if looksLikeHeaderRow(candidate[0]) {
			rows = candidate
			sheetName = name
			break
		}
	}
	if sheetName == "" {
		return nil, fmt.Errorf("no sheet in %s contains an HR dataset header row", path)
	}

	slog.Debug("Loaded Excel dataset",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(rows)-1))

	headers := stripBOM(rows[0])
	return tableFromRows(headers, rows[1:]), nil
}

// looksLikeHeaderRow reports whether the row reads like an HR header row.
func looksLikeHeaderRow(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	for _, hint := range headerHints {
		if !strings.Contains(joined, hint) {
			return false
		}
	}
	return true
}
