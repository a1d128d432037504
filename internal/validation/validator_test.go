package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrinsights/pkg/contracts/domain"
)

func tableWithRows(columns []string, rows ...domain.Row) *domain.Table {
	t := domain.NewTable(columns)
	t.Rows = rows
	return t
}

func TestValidateUniqueEmployeeID(t *testing.T) {
	t.Run("clean table yields no issues", func(t *testing.T) {
		table := tableWithRows([]string{"employee_id"},
			domain.Row{"employee_id": "001"},
			domain.Row{"employee_id": "002"},
		)
		assert.Empty(t, ValidateUniqueEmployeeID(table))
	})

	t.Run("missing column", func(t *testing.T) {
		table := tableWithRows([]string{"id"}, domain.Row{"id": "001"})
		issues := ValidateUniqueEmployeeID(table)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "employee_id")
	})

	t.Run("nulls and duplicates reported with sample", func(t *testing.T) {
		table := tableWithRows([]string{"employee_id"},
			domain.Row{"employee_id": "001"},
			domain.Row{"employee_id": "001"},
			domain.Row{"employee_id": nil},
		)
		issues := ValidateUniqueEmployeeID(table)
		require.Len(t, issues, 2)
		assert.Contains(t, issues[0], "null")
		assert.Contains(t, issues[1], "001")
	})
}

func TestValidateChronology(t *testing.T) {
	table := tableWithRows([]string{"hire_date", "termdate"},
		domain.Row{"hire_date": domain.NewDate(2020, time.January, 1), "termdate": domain.NewDate(2019, time.May, 2)},
		domain.Row{"hire_date": domain.NewDate(2015, time.March, 1), "termdate": domain.NewDate(2019, time.May, 2)},
		domain.Row{"hire_date": domain.NewDate(2016, time.April, 1), "termdate": nil},
	)

	issues := ValidateChronology(table)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "1 records have termination dates before hire dates")
}

func TestValidateChronologyMissingColumns(t *testing.T) {
	table := tableWithRows([]string{"employee_id"}, domain.Row{"employee_id": "001"})
	assert.Empty(t, ValidateChronology(table))
}

func TestAgeBoundsValidator(t *testing.T) {
	table := tableWithRows([]string{"age"},
		domain.Row{"age": 15},
		domain.Row{"age": 40},
		domain.Row{"age": 95},
		domain.Row{"age": nil},
	)

	issues := AgeBoundsValidator(16, 90)(table)
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0], "below the minimum age of 16")
	assert.Contains(t, issues[1], "exceed the maximum age of 90")
}

func TestRunValidationsUsesDefaults(t *testing.T) {
	table := tableWithRows([]string{"employee_id", "hire_date", "termdate", "age"},
		domain.Row{"employee_id": "001", "hire_date": domain.NewDate(2015, time.March, 1), "termdate": nil, "age": 33},
	)
	assert.Empty(t, RunValidations(table))
}

func TestRunValidationsConcatenates(t *testing.T) {
	table := tableWithRows([]string{"employee_id"}, domain.Row{"employee_id": "001"})
	first := func(*domain.Table) []string { return []string{"a"} }
	second := func(*domain.Table) []string { return []string{"b", "c"} }

	assert.Equal(t, []string{"a", "b", "c"}, RunValidations(table, first, second))
}
