package cleaning

import (
	"math"

	"hrinsights/pkg/contracts/domain"
)

// daysPerYear converts elapsed days to fractional years, averaging leap
// years.
const daysPerYear = 365.25

// Age computes whole years between birthdate and asOf using anniversary
// arithmetic: the year difference, minus one if the birthday has not yet
// occurred in asOf's year.
func Age(birthdate, asOf domain.Date) int {
	years := asOf.Year - birthdate.Year
	if asOf.Month < birthdate.Month ||
		(asOf.Month == birthdate.Month && asOf.Day < birthdate.Day) {
		years--
	}
	return years
}

// TenureYears computes elapsed employment years from hire to termination, or
// to asOf when the employee is still active. The result is rounded to one
// decimal place. The second result is false when tenure would be negative;
// tenure is never reported as a negative number.
func TenureYears(hire domain.Date, term *domain.Date, asOf domain.Date) (float64, bool) {
	end := asOf
	if term != nil {
		end = *term
	}
	days := end.DaysSince(hire)
	if days < 0 {
		return 0, false
	}
	return math.Round(float64(days)/daysPerYear*10) / 10, true
}

// computeAges fills the age column from the birthdate column. Rows with an
// absent or unparsed birthdate get an absent age; each row is computed
// independently.
func computeAges(t *domain.Table, asOf domain.Date) {
	t.AddColumn(domain.FieldAge)
	for _, row := range t.Rows {
		birth, ok := row.Date(domain.FieldBirthdate)
		if !ok {
			row[domain.FieldAge] = nil
			continue
		}
		row[domain.FieldAge] = Age(birth, asOf)
	}
}

// computeTenures fills the tenure_years column from hire and termination
// dates. Rows with an absent hire date get an absent tenure.
func computeTenures(t *domain.Table, asOf domain.Date) {
	t.AddColumn(domain.FieldTenureYears)
	for _, row := range t.Rows {
		hire, ok := row.Date(domain.FieldHireDate)
		if !ok {
			row[domain.FieldTenureYears] = nil
			continue
		}
		var term *domain.Date
		if d, ok := row.Date(domain.FieldTermDate); ok {
			term = &d
		}
		tenure, ok := TenureYears(hire, term, asOf)
		if !ok {
			row[domain.FieldTenureYears] = nil
			continue
		}
		row[domain.FieldTenureYears] = tenure
	}
}
