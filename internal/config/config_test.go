package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	cfg := DefaultDataset()

	assert.Equal(t, []string{"id", "birthdate", "hire_date", "gender", "department"}, cfg.RequiredColumns)
	assert.Equal(t, []string{"birthdate", "hire_date", "termdate"}, cfg.DateColumns)
	assert.Contains(t, cfg.CategoricalColumns, "location_state")
	assert.Equal(t, "id", cfg.IdentifierColumn)
	assert.Equal(t, "employee_id", cfg.RenamedIdentifier)
	assert.Equal(t, 18, cfg.MinimumAge)
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no required columns", mutate: func(c *Config) { c.Dataset.RequiredColumns = nil }},
		{name: "negative minimum age", mutate: func(c *Config) { c.Dataset.MinimumAge = -1 }},
		{name: "empty identifier", mutate: func(c *Config) { c.Dataset.IdentifierColumn = "" }},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
dataset:
  minimum_age: 21
logging:
  level: debug
paths:
  input_file: testdata/hr.csv
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Dataset.MinimumAge)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "testdata/hr.csv", cfg.Paths.InputFile)
	// Untouched sections keep their defaults.
	assert.Equal(t, []string{"id", "birthdate", "hire_date", "gender", "department"}, cfg.Dataset.RequiredColumns)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HRI_DATASET_MINIMUM_AGE", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Dataset.MinimumAge)
}
