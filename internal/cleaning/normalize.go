package cleaning

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hrinsights/pkg/contracts/domain"
)

// ColumnPolicy selects the normalization applied to a column. Columns without
// a policy pass through untouched.
type ColumnPolicy int

const (
	// PolicyPassthrough leaves cell values as-is.
	PolicyPassthrough ColumnPolicy = iota
	// PolicyDate parses cells into timezone-naive calendar dates.
	PolicyDate
	// PolicyCategorical trims cells and collapses internal whitespace runs.
	PolicyCategorical
	// PolicyTitleCase trims cells and applies title casing.
	PolicyTitleCase
)

// dateLayouts are the accepted raw date representations, tried in order.
// Timestamp layouts parse in UTC so that offset-bearing values collapse to
// their UTC calendar date before the time of day is discarded.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a heterogeneous raw date string into a calendar date. A
// trailing textual UTC marker (as emitted by some HRIS exports) is honored.
// The second result is false when no layout matches; unparseable input is a
// soft failure, never an error.
func ParseDate(raw string) (domain.Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Date{}, false
	}
	if cut, ok := strings.CutSuffix(s, " UTC"); ok {
		s = strings.TrimSpace(cut)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return domain.DateOf(t.UTC()), true
		}
	}
	return domain.Date{}, false
}

// NormalizeCategorical strips surrounding whitespace and collapses internal
// whitespace runs to a single space.
func NormalizeCategorical(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// NormalizeTitleCase strips surrounding whitespace and title-cases each word.
// A cases.Caser carries internal state, so a fresh one is built per call.
func NormalizeTitleCase(raw string) string {
	return cases.Title(language.English).String(strings.TrimSpace(raw))
}

// Normalizer applies per-column policies to a table.
type Normalizer struct {
	policies map[string]ColumnPolicy
}

// NewNormalizer builds a Normalizer from the configured column groups.
// Callers declare candidate columns up front; columns absent from a given
// table are silently skipped.
func NewNormalizer(dateColumns, categoricalColumns, titlecaseColumns []string) *Normalizer {
	policies := make(map[string]ColumnPolicy)
	for _, c := range dateColumns {
		policies[c] = PolicyDate
	}
	for _, c := range categoricalColumns {
		policies[c] = PolicyCategorical
	}
	for _, c := range titlecaseColumns {
		policies[c] = PolicyTitleCase
	}
	return &Normalizer{policies: policies}
}

// Apply normalizes t in place and returns per-column counts of date values
// that failed to parse (recorded as absent, not errors).
func (n *Normalizer) Apply(t *domain.Table) map[string]int {
	parseFailures := make(map[string]int)
	for _, column := range t.Columns {
		policy, ok := n.policies[column]
		if !ok || policy == PolicyPassthrough {
			continue
		}
		for _, row := range t.Rows {
			if _, parsed := row.Date(column); parsed {
				continue
			}
			raw, present := row.String(column)
			if !present {
				continue
			}
			switch policy {
			case PolicyDate:
				d, ok := ParseDate(raw)
				if !ok {
					row[column] = nil
					if strings.TrimSpace(raw) != "" {
						parseFailures[column]++
					}
					continue
				}
				row[column] = d
			case PolicyCategorical:
				row[column] = NormalizeCategorical(raw)
			case PolicyTitleCase:
				row[column] = NormalizeTitleCase(raw)
			}
		}
	}
	return parseFailures
}
