// Package pipeline runs the end-to-end flow: load the raw dataset, clean it,
// validate, export the cleaned CSV, and optionally compute analytics.
package pipeline

import (
	"fmt"
	"log/slog"

	"hrinsights/internal/analytics"
	"hrinsights/internal/cleaning"
	"hrinsights/internal/config"
	"hrinsights/internal/exporter"
	"hrinsights/internal/loader"
	"hrinsights/internal/validation"
	"hrinsights/pkg/contracts/domain"
)

// Options controls one pipeline invocation.
type Options struct {
	// InputPath and OutputPath override the configured defaults when set.
	InputPath  string
	OutputPath string
	// ComputeMetrics toggles the analytics pass.
	ComputeMetrics bool
	// AsOf is the reference date for age/tenure; zero means today.
	AsOf domain.Date
}

// Result carries everything one run produced.
type Result struct {
	Cleaned            *domain.Table
	Stats              *cleaning.Stats
	ValidationMessages []string
	OutputPath         string
	Metrics            *analytics.Metrics
}

// Runner executes the HR data pipeline for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to
// slog.Default.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run executes load, clean, validate, export, and (optionally) analytics.
// Structural schema problems abort the run; data-quality findings come back
// as advisory messages alongside the output.
func (r *Runner) Run(opts Options) (*Result, error) {
	inputPath := opts.InputPath
	if inputPath == "" {
		inputPath = r.cfg.Paths.InputFile
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = r.cfg.Paths.OutputFile
	}

	r.logger.Info("Loading HR dataset", slog.String("path", inputPath))
	raw, err := loader.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	r.logger.Info("Cleaning dataset", slog.Int("rows", raw.Len()))
	cleaner := cleaning.NewCleaner(r.cfg.Dataset, r.logger)
	cleaned, stats, err := cleaner.Clean(raw, opts.AsOf)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Running validations")
	messages := validation.RunValidations(cleaned)
	for _, message := range messages {
		r.logger.Warn("Validation issue", slog.String("message", message))
	}

	r.logger.Info("Writing cleaned dataset", slog.String("path", outputPath))
	writer := exporter.NewCSVWriter(r.logger)
	if err := writer.WriteTable(outputPath, cleaned, exporter.WriteOptions{BOMPrefix: true}); err != nil {
		return nil, fmt.Errorf("failed to write cleaned dataset: %w", err)
	}

	result := &Result{
		Cleaned:            cleaned,
		Stats:              stats,
		ValidationMessages: messages,
		OutputPath:         outputPath,
	}
	if opts.ComputeMetrics {
		r.logger.Info("Calculating analytics views")
		result.Metrics = analytics.CalculateAllMetrics(cleaned, opts.AsOf)
	}
	return result, nil
}
