package cleaning

import (
	"hrinsights/pkg/contracts/domain"
)

// EnforceChronology nulls every termination date that strictly precedes its
// hire date. The record itself is kept and the hire date is never altered;
// this is the single repair rule. Returns the number of repaired rows.
func EnforceChronology(t *domain.Table) int {
	repaired := 0
	for _, row := range t.Rows {
		term, ok := row.Date(domain.FieldTermDate)
		if !ok {
			continue
		}
		hire, ok := row.Date(domain.FieldHireDate)
		if !ok {
			continue
		}
		if term.Before(hire) {
			row[domain.FieldTermDate] = nil
			repaired++
		}
	}
	return repaired
}
