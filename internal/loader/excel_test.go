package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	// A cover sheet first, then the data sheet; probing must skip the cover.
	require.NoError(t, f.SetSheetName("Sheet1", "Notes"))
	require.NoError(t, f.SetSheetRow("Notes", "A1", &[]string{"Exported by HRIS"}))

	_, err := f.NewSheet("Employees")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Employees", "A1", &[]string{"id", "first name", "hire_date", "gender"}))
	require.NoError(t, f.SetSheetRow("Employees", "A2", &[]string{"001", "alicia", "2015-03-01", "female"}))
	require.NoError(t, f.SetSheetRow("Employees", "A3", &[]string{"002", "mark", "04/01/2016", "male"}))

	path := filepath.Join(t.TempDir(), "hr.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadExcel(t *testing.T) {
	path := writeTempWorkbook(t)

	table, err := LoadExcel(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "first name", "hire_date", "gender"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "alicia", table.Rows[0]["first name"])
	assert.Equal(t, "04/01/2016", table.Rows[1]["hire_date"])
}

func TestLoadExcelNoDataSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"just", "notes"}))
	path := filepath.Join(t.TempDir(), "nodata.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := LoadExcel(path)
	assert.Error(t, err)
}
