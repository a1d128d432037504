// Command hrpipeline runs the HR data cleaning and analytics pipeline:
// it loads a raw HR export (CSV or Excel), cleans and normalizes it, reports
// validation findings, writes the cleaned CSV, and prints summary analytics.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hrinsights/internal/config"
	"hrinsights/internal/infrastructure"
	"hrinsights/internal/pipeline"
	"hrinsights/pkg/contracts"
)

func main() {
	os.Exit(run())
}

func run() int {
	input := flag.String("in", "", "path to the raw HR dataset (.csv or .xlsx; defaults to config)")
	output := flag.String("out", "", "output path for the cleaned CSV (defaults to config)")
	configFile := flag.String("config", "", "optional YAML config file")
	noMetrics := flag.Bool("no-metrics", false, "skip analytics calculations")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionInfo())
		return 0
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger, closeLog, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	defer closeLog()

	runner := pipeline.NewRunner(cfg, logger)
	result, err := runner.Run(pipeline.Options{
		InputPath:      *input,
		OutputPath:     *output,
		ComputeMetrics: !*noMetrics,
	})
	if err != nil {
		logger.Error("Pipeline failed", slog.String("error", err.Error()))
		return 1
	}

	fmt.Printf("Cleaned records: %d\n", result.Cleaned.Len())
	fmt.Printf("Output written to: %s\n", result.OutputPath)
	if len(result.ValidationMessages) > 0 {
		fmt.Println("\nValidation warnings:")
		for _, message := range result.ValidationMessages {
			fmt.Printf("- %s\n", message)
		}
	}

	if result.Metrics != nil {
		fmt.Println("\nHeadcount by department (terminated/total):")
		for _, dept := range result.Metrics.DepartmentTurnover {
			fmt.Printf("- %s: %d/%d (turnover %.1f%%)\n",
				dept.Department, dept.TerminatedCount, dept.TotalHeadcount, dept.TurnoverRate*100)
		}
	}
	return 0
}
