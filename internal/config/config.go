package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// DatasetConfig describes how the raw HR dataset is parsed and cleaned. The
// value is treated as immutable: pipeline stages read it, never write it.
type DatasetConfig struct {
	// RequiredColumns must exist (post-canonicalization) or cleaning fails.
	RequiredColumns []string `yaml:"required_columns" envconfig:"REQUIRED_COLUMNS" validate:"min=1,dive,required"`
	// DateColumns are parsed into calendar dates.
	DateColumns []string `yaml:"date_columns" envconfig:"DATE_COLUMNS"`
	// TitlecaseColumns get title-case formatting (names).
	TitlecaseColumns []string `yaml:"titlecase_columns" envconfig:"TITLECASE_COLUMNS"`
	// CategoricalColumns get whitespace trimming and run collapsing.
	CategoricalColumns []string `yaml:"categorical_columns" envconfig:"CATEGORICAL_COLUMNS"`
	// IdentifierColumn is the raw unique-id column; it is renamed to
	// RenamedIdentifier in the cleaned output.
	IdentifierColumn  string `yaml:"identifier_column" envconfig:"IDENTIFIER_COLUMN" validate:"required"`
	RenamedIdentifier string `yaml:"renamed_identifier" envconfig:"RENAMED_IDENTIFIER" validate:"required"`
	// MinimumAge drops records whose computed age is present and below it.
	MinimumAge int `yaml:"minimum_age" envconfig:"MINIMUM_AGE" validate:"gte=0,lte=120"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains default file system locations.
type PathsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
}

// Default returns the configuration for the standard HR dataset schema.
func Default() *Config {
	return &Config{
		Dataset: DefaultDataset(),
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/hrpipeline.log",
		},
		Paths: PathsConfig{
			InputFile:  "data/raw/Human Resources.csv",
			OutputFile: "data/processed/Cleaned_HR_Data.csv",
		},
	}
}

// DefaultDataset returns the dataset configuration matching the canonical HR
// export schema.
func DefaultDataset() DatasetConfig {
	return DatasetConfig{
		RequiredColumns: []string{"id", "birthdate", "hire_date", "gender", "department"},
		DateColumns:     []string{"birthdate", "hire_date", "termdate"},
		TitlecaseColumns: []string{
			"first_name",
			"last_name",
		},
		CategoricalColumns: []string{
			"gender",
			"race",
			"department",
			"jobtitle",
			"location",
			"location_city",
			"location_state",
		},
		IdentifierColumn:  "id",
		RenamedIdentifier: "employee_id",
		MinimumAge:        18,
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// HRI_-prefixed environment variables, in increasing precedence.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("HRI", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile overlays YAML file contents onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}
