// Package analytics computes descriptive aggregates over a cleaned HR table:
// headcount breakdowns, attrition, and tenure summaries. It consumes the
// cleaned table read-only; cleaning never depends on this package.
package analytics

import (
	"math"
	"sort"
	"strconv"

	"hrinsights/pkg/contracts/domain"
)

// Age band boundaries, left-closed: [18,25), [25,35), ...
var (
	ageBandBounds = []int{18, 25, 35, 45, 55, 65}
	ageBandLabels = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
)

// GroupCount is one group's headcount.
type GroupCount struct {
	Key   string
	Count int
}

// CrossCount is a headcount for a two-way grouping.
type CrossCount struct {
	Primary   string
	Secondary string
	Count     int
}

// AgeDistribution summarizes the age column.
type AgeDistribution struct {
	Youngest int
	Oldest   int
	ByDecade []GroupCount
	ByBand   []GroupCount
}

// DepartmentTurnover is one department's headcount and attrition summary.
type DepartmentTurnover struct {
	Department      string
	TotalHeadcount  int
	TerminatedCount int
	ActiveCount     int
	TurnoverRate    float64
}

// YearlyChange tracks hires and terminations for one calendar year.
type YearlyChange struct {
	Year         int
	Hires        int
	Terminations int
	NetChange    int
	// NetChangePercent is nil when the year had no hires.
	NetChangePercent *float64
}

// DepartmentTenure is a department's average terminated-employee tenure.
type DepartmentTenure struct {
	Department     string
	AvgTenureYears float64
}

// Metrics bundles every standard aggregate for one reference date.
type Metrics struct {
	GenderBreakdown              []GroupCount
	RaceBreakdown                []GroupCount
	AgeDistribution              AgeDistribution
	AgeGenderBreakdown           []CrossCount
	LocationDistribution         []GroupCount
	AverageTerminatedTenure      float64
	DepartmentGenderDistribution []CrossCount
	JobtitleDistribution         []GroupCount
	DepartmentTurnover           []DepartmentTurnover
	LocationStateDistribution    []GroupCount
	EmployeeCountOverTime        []YearlyChange
	DepartmentTenureDistribution []DepartmentTenure
}

// CalculateAllMetrics computes the full aggregate set. asOf bounds what
// counts as a past termination; pass the zero Date for today.
func CalculateAllMetrics(t *domain.Table, asOf domain.Date) *Metrics {
	if asOf.IsZero() {
		asOf = domain.Today()
	}
	return &Metrics{
		GenderBreakdown:              GenderBreakdown(t),
		RaceBreakdown:                RaceBreakdown(t),
		AgeDistribution:              ComputeAgeDistribution(t),
		AgeGenderBreakdown:           AgeGenderBreakdown(t),
		LocationDistribution:         LocationDistribution(t),
		AverageTerminatedTenure:      AverageTerminatedTenure(t, asOf),
		DepartmentGenderDistribution: DepartmentGenderDistribution(t),
		JobtitleDistribution:         JobtitleDistribution(t, 0),
		DepartmentTurnover:           ComputeDepartmentTurnover(t, asOf),
		LocationStateDistribution:    LocationStateDistribution(t),
		EmployeeCountOverTime:        EmployeeCountOverTime(t, asOf),
		DepartmentTenureDistribution: DepartmentTenureDistribution(t, asOf),
	}
}

// adultRows filters to records with a present age of 18 or more. Every
// aggregate works over this subset.
func adultRows(t *domain.Table) []domain.Row {
	var adults []domain.Row
	for _, row := range t.Rows {
		if age, ok := row.Int(domain.FieldAge); ok && age >= 18 {
			adults = append(adults, row)
		}
	}
	return adults
}

// terminatedBy reports whether the row has a termination date on or before
// asOf.
func terminatedBy(row domain.Row, asOf domain.Date) bool {
	term, ok := row.Date(domain.FieldTermDate)
	return ok && !term.After(asOf)
}

// countBy groups rows by a single column value.
func countBy(rows []domain.Row, column string) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		key, _ := row.String(column)
		counts[key]++
	}
	return counts
}

func sortedByKey(counts map[string]int) []GroupCount {
	out := toGroupCounts(counts)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func sortedByCountDesc(counts map[string]int) []GroupCount {
	out := toGroupCounts(counts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func toGroupCounts(counts map[string]int) []GroupCount {
	out := make([]GroupCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, GroupCount{Key: key, Count: count})
	}
	return out
}

// GenderBreakdown counts employees per gender.
func GenderBreakdown(t *domain.Table) []GroupCount {
	return sortedByKey(countBy(adultRows(t), domain.FieldGender))
}

// RaceBreakdown counts employees per race, most common first.
func RaceBreakdown(t *domain.Table) []GroupCount {
	return sortedByCountDesc(countBy(adultRows(t), domain.FieldRace))
}

// ComputeAgeDistribution summarizes ages by range, decade, and band.
func ComputeAgeDistribution(t *domain.Table) AgeDistribution {
	adults := adultRows(t)
	dist := AgeDistribution{}
	decades := make(map[string]int)
	bands := make(map[string]int)
	first := true
	for _, row := range adults {
		age, _ := row.Int(domain.FieldAge)
		if first || age < dist.Youngest {
			dist.Youngest = age
		}
		if first || age > dist.Oldest {
			dist.Oldest = age
		}
		first = false
		decades[decadeLabel(age)]++
		bands[ageBand(age)]++
	}
	dist.ByDecade = sortedByKey(decades)
	dist.ByBand = sortedByKey(bands)
	return dist
}

func decadeLabel(age int) string {
	decade := (age / 10) * 10
	return strconv.Itoa(decade) + "s"
}

// ageBand maps an age to its left-closed band label.
func ageBand(age int) string {
	label := ageBandLabels[len(ageBandLabels)-1]
	for i := len(ageBandBounds) - 1; i > 0; i-- {
		if age < ageBandBounds[i] {
			label = ageBandLabels[i-1]
		}
	}
	return label
}

// AgeGenderBreakdown counts employees per age band and gender.
func AgeGenderBreakdown(t *domain.Table) []CrossCount {
	return crossCount(adultRows(t), func(row domain.Row) (string, bool) {
		age, ok := row.Int(domain.FieldAge)
		if !ok {
			return "", false
		}
		return ageBand(age), true
	}, domain.FieldGender)
}

// LocationDistribution counts employees per work location, largest first.
func LocationDistribution(t *domain.Table) []GroupCount {
	return sortedByCountDesc(countBy(adultRows(t), domain.FieldLocation))
}

// LocationStateDistribution counts employees per state, largest first.
func LocationStateDistribution(t *domain.Table) []GroupCount {
	return sortedByCountDesc(countBy(adultRows(t), domain.FieldLocationState))
}

// AverageTerminatedTenure returns the mean tenure in years of employees
// terminated on or before asOf, rounded to two decimals. NaN when no
// employee has been terminated.
func AverageTerminatedTenure(t *domain.Table, asOf domain.Date) float64 {
	totalDays, count := 0, 0
	for _, row := range adultRows(t) {
		if !terminatedBy(row, asOf) {
			continue
		}
		hire, ok := row.Date(domain.FieldHireDate)
		if !ok {
			continue
		}
		term, _ := row.Date(domain.FieldTermDate)
		totalDays += term.DaysSince(hire)
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return math.Round(float64(totalDays)/float64(count)/365*100) / 100
}

// DepartmentGenderDistribution counts employees per department and gender.
func DepartmentGenderDistribution(t *domain.Table) []CrossCount {
	return crossCount(adultRows(t), func(row domain.Row) (string, bool) {
		dept, _ := row.String(domain.FieldDepartment)
		return dept, true
	}, domain.FieldGender)
}

// JobtitleDistribution counts employees per job title, largest first,
// trimmed to topN entries when topN is positive.
func JobtitleDistribution(t *domain.Table, topN int) []GroupCount {
	grouped := sortedByCountDesc(countBy(adultRows(t), domain.FieldJobTitle))
	if topN > 0 && len(grouped) > topN {
		return grouped[:topN]
	}
	return grouped
}

// ComputeDepartmentTurnover summarizes headcount and attrition per
// department, highest turnover rate first.
func ComputeDepartmentTurnover(t *domain.Table, asOf domain.Date) []DepartmentTurnover {
	type tally struct{ total, terminated int }
	byDept := make(map[string]*tally)
	for _, row := range adultRows(t) {
		dept, _ := row.String(domain.FieldDepartment)
		entry := byDept[dept]
		if entry == nil {
			entry = &tally{}
			byDept[dept] = entry
		}
		entry.total++
		if terminatedBy(row, asOf) {
			entry.terminated++
		}
	}

	out := make([]DepartmentTurnover, 0, len(byDept))
	for dept, entry := range byDept {
		out = append(out, DepartmentTurnover{
			Department:      dept,
			TotalHeadcount:  entry.total,
			TerminatedCount: entry.terminated,
			ActiveCount:     entry.total - entry.terminated,
			TurnoverRate:    float64(entry.terminated) / float64(entry.total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TurnoverRate != out[j].TurnoverRate {
			return out[i].TurnoverRate > out[j].TurnoverRate
		}
		return out[i].Department < out[j].Department
	})
	return out
}

// EmployeeCountOverTime reports hires and terminations per calendar year.
func EmployeeCountOverTime(t *domain.Table, asOf domain.Date) []YearlyChange {
	hires := make(map[int]int)
	terms := make(map[int]int)
	for _, row := range adultRows(t) {
		if hire, ok := row.Date(domain.FieldHireDate); ok {
			hires[hire.Year]++
		}
		if terminatedBy(row, asOf) {
			term, _ := row.Date(domain.FieldTermDate)
			terms[term.Year]++
		}
	}

	years := make(map[int]struct{})
	for y := range hires {
		years[y] = struct{}{}
	}
	for y := range terms {
		years[y] = struct{}{}
	}
	ordered := make([]int, 0, len(years))
	for y := range years {
		ordered = append(ordered, y)
	}
	sort.Ints(ordered)

	out := make([]YearlyChange, 0, len(ordered))
	for _, year := range ordered {
		change := YearlyChange{
			Year:         year,
			Hires:        hires[year],
			Terminations: terms[year],
		}
		change.NetChange = change.Hires - change.Terminations
		if change.Hires > 0 {
			pct := math.Round(float64(change.NetChange)/float64(change.Hires)*100*100) / 100
			change.NetChangePercent = &pct
		}
		out = append(out, change)
	}
	return out
}

// DepartmentTenureDistribution averages terminated-employee tenure per
// department, rounded to one decimal.
func DepartmentTenureDistribution(t *domain.Table, asOf domain.Date) []DepartmentTenure {
	type tally struct {
		days  int
		count int
	}
	byDept := make(map[string]*tally)
	for _, row := range adultRows(t) {
		if !terminatedBy(row, asOf) {
			continue
		}
		hire, ok := row.Date(domain.FieldHireDate)
		if !ok {
			continue
		}
		term, _ := row.Date(domain.FieldTermDate)
		dept, _ := row.String(domain.FieldDepartment)
		entry := byDept[dept]
		if entry == nil {
			entry = &tally{}
			byDept[dept] = entry
		}
		entry.days += term.DaysSince(hire)
		entry.count++
	}

	out := make([]DepartmentTenure, 0, len(byDept))
	for dept, entry := range byDept {
		avg := float64(entry.days) / float64(entry.count) / 365.25
		out = append(out, DepartmentTenure{
			Department:     dept,
			AvgTenureYears: math.Round(avg*10) / 10,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

// crossCount groups rows by a derived primary key and a secondary column.
func crossCount(rows []domain.Row, primary func(domain.Row) (string, bool), secondary string) []CrossCount {
	type pair struct{ a, b string }
	counts := make(map[pair]int)
	for _, row := range rows {
		key, ok := primary(row)
		if !ok {
			continue
		}
		sec, _ := row.String(secondary)
		counts[pair{key, sec}]++
	}
	out := make([]CrossCount, 0, len(counts))
	for p, count := range counts {
		out = append(out, CrossCount{Primary: p.a, Secondary: p.b, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Primary != out[j].Primary {
			return out[i].Primary < out[j].Primary
		}
		return out[i].Secondary < out[j].Secondary
	})
	return out
}
