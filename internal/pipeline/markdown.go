package pipeline

import (
	"strings"

	"hrinsights/internal/exporter"
	"hrinsights/pkg/contracts/domain"
)

// TableToMarkdown renders a table as a GitHub-style Markdown table trimmed
// to maxRows data rows. Handy for README and report generation.
func TableToMarkdown(t *domain.Table, maxRows int) string {
	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	var b strings.Builder
	writeMarkdownRow(&b, t.Columns)

	separators := make([]string, len(t.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	writeMarkdownRow(&b, separators)

	cells := make([]string, len(t.Columns))
	for _, row := range rows {
		for i, column := range t.Columns {
			cells[i] = exporter.FormatCell(row[column])
		}
		writeMarkdownRow(&b, cells)
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
