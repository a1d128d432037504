// Package validation reports advisory data-quality issues on a cleaned HR
// table. Issues are human-readable messages; they never block output.
package validation

import (
	"fmt"
	"strings"

	"hrinsights/pkg/contracts/domain"
)

// Validator inspects a cleaned table and reports issues as messages.
type Validator func(t *domain.Table) []string

// DefaultValidators is the standard post-cleaning validation set.
func DefaultValidators() []Validator {
	return []Validator{
		ValidateUniqueEmployeeID,
		ValidateChronology,
		AgeBoundsValidator(16, 90),
	}
}

// RunValidations executes each validator in order and concatenates their
// messages.
func RunValidations(t *domain.Table, validators ...Validator) []string {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	var issues []string
	for _, validate := range validators {
		issues = append(issues, validate(t)...)
	}
	return issues
}

// ValidateUniqueEmployeeID checks that employee IDs are present, non-null,
// and unique. Duplicate values are reported with a sample of up to five.
func ValidateUniqueEmployeeID(t *domain.Table) []string {
	var issues []string
	if !t.HasColumn(domain.FieldEmployeeID) {
		return []string{fmt.Sprintf("Column %q not present in dataset.", domain.FieldEmployeeID)}
	}

	seen := make(map[string]int, t.Len())
	var duplicates []string
	nulls := 0
	for _, row := range t.Rows {
		id, ok := row.String(domain.FieldEmployeeID)
		if !ok || id == "" {
			nulls++
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			duplicates = append(duplicates, id)
		}
	}

	if nulls > 0 {
		issues = append(issues, fmt.Sprintf("Dataset contains %d null values in %q.", nulls, domain.FieldEmployeeID))
	}
	if len(duplicates) > 0 {
		sample := duplicates
		if len(sample) > 5 {
			sample = sample[:5]
		}
		issues = append(issues, fmt.Sprintf(
			"Dataset contains duplicate employee_id values (sample): %s", strings.Join(sample, ", ")))
	}
	return issues
}

// ValidateChronology counts records whose termination date precedes the hire
// date. A cleaned table should report zero.
func ValidateChronology(t *domain.Table) []string {
	if !t.HasColumn(domain.FieldHireDate) || !t.HasColumn(domain.FieldTermDate) {
		return nil
	}
	count := 0
	for _, row := range t.Rows {
		term, ok := row.Date(domain.FieldTermDate)
		if !ok {
			continue
		}
		if hire, ok := row.Date(domain.FieldHireDate); ok && term.Before(hire) {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%d records have termination dates before hire dates.", count)}
}

// AgeBoundsValidator warns about implausible ages outside [minimumAge,
// maximumAge]. These bounds are advisory and independent of the hard minimum
// applied during cleaning.
func AgeBoundsValidator(minimumAge, maximumAge int) Validator {
	return func(t *domain.Table) []string {
		if !t.HasColumn(domain.FieldAge) {
			return nil
		}
		tooYoung, tooOld := 0, 0
		for _, row := range t.Rows {
			age, ok := row.Int(domain.FieldAge)
			if !ok {
				continue
			}
			if age < minimumAge {
				tooYoung++
			}
			if age > maximumAge {
				tooOld++
			}
		}
		var issues []string
		if tooYoung > 0 {
			issues = append(issues, fmt.Sprintf(
				"%d employees fall below the minimum age of %d.", tooYoung, minimumAge))
		}
		if tooOld > 0 {
			issues = append(issues, fmt.Sprintf(
				"%d employees exceed the maximum age of %d.", tooOld, maximumAge))
		}
		return issues
	}
}
