package domain

import (
	"github.com/spf13/cast"
)

// Canonical field names for the cleaned employee schema.
const (
	FieldEmployeeID    = "employee_id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldBirthdate     = "birthdate"
	FieldHireDate      = "hire_date"
	FieldTermDate      = "termdate"
	FieldGender        = "gender"
	FieldRace          = "race"
	FieldDepartment    = "department"
	FieldJobTitle      = "jobtitle"
	FieldLocation      = "location"
	FieldLocationCity  = "location_city"
	FieldLocationState = "location_state"
	FieldAge           = "age"
	FieldTenureYears   = "tenure_years"
)

// Row is one record of a tabular dataset. Cell values are string, Date, int,
// or float64; an absent value is a nil entry or a missing key.
type Row map[string]any

// Table is an in-memory tabular dataset with an ordered column list.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// RenameColumn renames a column in both the schema and every row. A missing
// source column is a no-op.
func (t *Table) RenameColumn(from, to string) {
	renamed := false
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
			renamed = true
			break
		}
	}
	if !renamed {
		return
	}
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// Clone returns a deep copy of the table. Cell values are immutable scalar
// types, so copying the row maps is sufficient.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		cloned := make(Row, len(row))
		for k, v := range row {
			cloned[k] = v
		}
		out.Rows[i] = cloned
	}
	return out
}

// Absent reports whether the named cell holds no value.
func (r Row) Absent(name string) bool {
	v, ok := r[name]
	return !ok || v == nil
}

// String returns the cell coerced to a string. The second result is false
// when the value is absent.
func (r Row) String(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	return cast.ToString(v), true
}

// Date returns the cell as a calendar date. The second result is false when
// the value is absent or not a Date.
func (r Row) Date(name string) (Date, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return Date{}, false
	}
	d, ok := v.(Date)
	return d, ok
}

// Int returns the cell coerced to an int. The second result is false when the
// value is absent or not numeric.
func (r Row) Int(name string) (int, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns the cell coerced to a float64. The second result is false
// when the value is absent or not numeric.
func (r Row) Float(name string) (float64, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}
