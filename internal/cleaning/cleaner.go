// Package cleaning implements the core transformation of a raw HR dataset
// into the cleaned employee table: header canonicalization, deduplication,
// date/text normalization, derived-field computation, and chronology repair.
package cleaning

import (
	"log/slog"

	"github.com/google/uuid"

	"hrinsights/internal/config"
	"hrinsights/pkg/contracts/domain"
)

// Stats summarizes what one cleaning run did to the dataset.
type Stats struct {
	RunID              string
	InputRows          int
	OutputRows         int
	DroppedDuplicates  int
	DroppedUnderage    int
	RepairedChronology int
	// ParseFailures counts date values per column that could not be parsed
	// and were recorded as absent.
	ParseFailures map[string]int
}

// Cleaner sequences the cleaning stages for one dataset configuration.
type Cleaner struct {
	cfg    config.DatasetConfig
	logger *slog.Logger
}

// NewCleaner creates a Cleaner. A nil logger falls back to slog.Default.
func NewCleaner(cfg config.DatasetConfig, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{cfg: cfg, logger: logger}
}

// Clean transforms a raw table into the cleaned employee table. The caller's
// input is never mutated. asOf is the reference date for age and tenure;
// pass the zero Date to use today's UTC calendar date.
//
// Stage order: canonicalize headers, check required columns (fail fast),
// deduplicate by identifier (first occurrence wins), rename the identifier,
// normalize dates and text, compute age, drop rows whose age is present and
// below the configured minimum (absent ages are kept), compute tenure,
// enforce chronology.
func (c *Cleaner) Clean(raw *domain.Table, asOf domain.Date) (*domain.Table, *Stats, error) {
	if asOf.IsZero() {
		asOf = domain.Today()
	}

	stats := &Stats{
		RunID:     uuid.NewString(),
		InputRows: raw.Len(),
	}
	logger := c.logger.With(slog.String("run_id", stats.RunID))

	working := raw.Clone()

	if err := c.canonicalize(working); err != nil {
		return nil, nil, err
	}
	if err := ValidateRequiredColumns(working.Columns, c.cfg.RequiredColumns); err != nil {
		logger.Error("Required columns missing", slog.String("error", err.Error()))
		return nil, nil, err
	}

	stats.DroppedDuplicates = c.deduplicate(working)
	working.RenameColumn(c.cfg.IdentifierColumn, c.cfg.RenamedIdentifier)

	normalizer := NewNormalizer(c.cfg.DateColumns, c.cfg.CategoricalColumns, c.cfg.TitlecaseColumns)
	stats.ParseFailures = normalizer.Apply(working)
	for column, count := range stats.ParseFailures {
		logger.Warn("Unparseable date values recorded as absent",
			slog.String("column", column),
			slog.Int("count", count))
	}

	computeAges(working, asOf)
	stats.DroppedUnderage = c.filterUnderage(working)
	computeTenures(working, asOf)
	stats.RepairedChronology = EnforceChronology(working)

	stats.OutputRows = working.Len()
	logger.Info("Dataset cleaned",
		slog.Int("input_rows", stats.InputRows),
		slog.Int("output_rows", stats.OutputRows),
		slog.Int("dropped_duplicates", stats.DroppedDuplicates),
		slog.Int("dropped_underage", stats.DroppedUnderage),
		slog.Int("repaired_chronology", stats.RepairedChronology))

	return working, stats, nil
}

// canonicalize rewrites the schema and every row key to canonical form.
func (c *Cleaner) canonicalize(t *domain.Table) error {
	canonical, err := CanonicalizeHeaders(t.Columns)
	if err != nil {
		return err
	}
	for i, old := range t.Columns {
		if old == canonical[i] {
			continue
		}
		for _, row := range t.Rows {
			if v, ok := row[old]; ok {
				row[canonical[i]] = v
				delete(row, old)
			}
		}
	}
	t.Columns = canonical
	return nil
}

// deduplicate keeps the first row per identifier value, in original order,
// and returns the number of dropped rows.
func (c *Cleaner) deduplicate(t *domain.Table) int {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	dropped := 0
	for _, row := range t.Rows {
		id, _ := row.String(c.cfg.IdentifierColumn)
		if _, dup := seen[id]; dup {
			dropped++
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, row)
	}
	t.Rows = kept
	return dropped
}

// filterUnderage drops rows whose age is present and below the configured
// minimum. Rows with an absent age are kept.
func (c *Cleaner) filterUnderage(t *domain.Table) int {
	kept := t.Rows[:0]
	dropped := 0
	for _, row := range t.Rows {
		if age, ok := row.Int(domain.FieldAge); ok && age < c.cfg.MinimumAge {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return dropped
}
