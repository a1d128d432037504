package cleaning

import (
	"strings"
	"unicode"

	"hrinsights/internal/errors"
)

// CanonicalizeHeader normalizes one raw column label into its canonical key:
// surrounding whitespace stripped, `/`, `-`, and spaces replaced with
// underscores, non-printable runes (BOM artifacts included) removed, and the
// result lower-cased. Canonical keys are stable: canonicalizing a canonical
// key returns it unchanged.
func CanonicalizeHeader(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer("/", "_", "-", "_", " ", "_").Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

// CanonicalizeHeaders canonicalizes a header list, preserving order. Two
// distinct raw headers that collapse to the same canonical key indicate a
// broken schema upstream, so the collision fails fast rather than silently
// overwriting a column.
func CanonicalizeHeaders(headers []string) ([]string, error) {
	out := make([]string, len(headers))
	seen := make(map[string]string, len(headers))
	for i, raw := range headers {
		key := CanonicalizeHeader(raw)
		if first, ok := seen[key]; ok {
			return nil, errors.NewCollisionError(key, first, raw)
		}
		seen[key] = raw
		out[i] = key
	}
	return out, nil
}

// ValidateRequiredColumns fails with a SchemaError naming every missing
// required column, not just the first.
func ValidateRequiredColumns(columns, required []string) error {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := present[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return errors.NewSchemaError(missing)
	}
	return nil
}
