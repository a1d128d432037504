package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrinsights/pkg/contracts/domain"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name      string
		birthdate domain.Date
		asOf      domain.Date
		want      int
	}{
		{
			name:      "anniversary not yet reached",
			birthdate: domain.NewDate(1990, time.January, 15),
			asOf:      domain.NewDate(2024, time.January, 1),
			want:      33,
		},
		{
			name:      "anniversary passed",
			birthdate: domain.NewDate(1990, time.January, 15),
			asOf:      domain.NewDate(2024, time.February, 1),
			want:      34,
		},
		{
			name:      "birthday is today",
			birthdate: domain.NewDate(1990, time.January, 15),
			asOf:      domain.NewDate(2024, time.January, 15),
			want:      34,
		},
		{
			name:      "day before birthday",
			birthdate: domain.NewDate(1990, time.January, 15),
			asOf:      domain.NewDate(2024, time.January, 14),
			want:      33,
		},
		{
			name:      "same month earlier day",
			birthdate: domain.NewDate(1992, time.May, 20),
			asOf:      domain.NewDate(2024, time.May, 10),
			want:      31,
		},
		{
			name:      "born this year",
			birthdate: domain.NewDate(2024, time.March, 1),
			asOf:      domain.NewDate(2024, time.June, 1),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Age(tt.birthdate, tt.asOf)
			assert.Equal(t, tt.want, got)
			// Full elapsed years never exceed the raw year difference.
			assert.LessOrEqual(t, got, tt.asOf.Year-tt.birthdate.Year)
		})
	}
}

func TestTenureYears(t *testing.T) {
	term := domain.NewDate(2019, time.May, 2)

	tests := []struct {
		name   string
		hire   domain.Date
		term   *domain.Date
		asOf   domain.Date
		want   float64
		wantOK bool
	}{
		{
			name:   "active employee measured to reference date",
			hire:   domain.NewDate(2016, time.April, 1),
			asOf:   domain.NewDate(2024, time.January, 1),
			want:   7.8,
			wantOK: true,
		},
		{
			name:   "terminated employee measured to termdate",
			hire:   domain.NewDate(2015, time.March, 1),
			term:   &term,
			asOf:   domain.NewDate(2024, time.January, 1),
			want:   4.2,
			wantOK: true,
		},
		{
			name:   "hired on reference date",
			hire:   domain.NewDate(2024, time.January, 1),
			asOf:   domain.NewDate(2024, time.January, 1),
			want:   0,
			wantOK: true,
		},
		{
			name:   "negative tenure is absent",
			hire:   domain.NewDate(2020, time.January, 1),
			term:   &term,
			asOf:   domain.NewDate(2024, time.January, 1),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TenureYears(tt.hire, tt.term, tt.asOf)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
				assert.GreaterOrEqual(t, got, 0.0)
			}
		})
	}
}

func TestComputeAgesAbsentPropagation(t *testing.T) {
	table := domain.NewTable([]string{"birthdate"})
	table.Rows = []domain.Row{
		{"birthdate": domain.NewDate(1990, time.January, 15)},
		{"birthdate": nil},
	}

	computeAges(table, domain.NewDate(2024, time.February, 1))

	age, ok := table.Rows[0].Int(domain.FieldAge)
	require.True(t, ok)
	assert.Equal(t, 34, age)
	// One record's missing date never affects another's computation.
	assert.True(t, table.Rows[1].Absent(domain.FieldAge))
}

func TestComputeTenuresAbsentPropagation(t *testing.T) {
	table := domain.NewTable([]string{"hire_date", "termdate"})
	table.Rows = []domain.Row{
		{"hire_date": domain.NewDate(2016, time.April, 1), "termdate": nil},
		{"hire_date": nil, "termdate": nil},
	}

	computeTenures(table, domain.NewDate(2024, time.January, 1))

	tenure, ok := table.Rows[0].Float(domain.FieldTenureYears)
	require.True(t, ok)
	assert.InDelta(t, 7.8, tenure, 0.001)
	assert.True(t, table.Rows[1].Absent(domain.FieldTenureYears))
}
