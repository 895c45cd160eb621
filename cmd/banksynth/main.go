package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"banksynth/internal/config"
	"banksynth/internal/gateway"
	"banksynth/internal/usecase"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to a YAML config file (optional, compiled-in defaults otherwise)")
	outDir := flag.String("out", "", "Output directory (overrides the config value)")
	formats := flag.String("formats", "", "Comma-separated output formats: csv,sql (overrides the config value)")
	seed := flag.Int64("seed", 0, "Random seed for a reproducible run (overrides the config value)")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.OutputDirectory = *outDir
	}
	if *formats != "" {
		cfg.OutputFormats = strings.Split(*formats, ",")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	// Manual wiring keeps the composition explicit: one writer per requested
	// output format, all injected into the usecase.
	var writers []usecase.DatasetWriter
	for _, format := range cfg.OutputFormats {
		switch format {
		case "csv":
			writers = append(writers, gateway.NewCSVDatasetWriter(cfg.OutputDirectory))
		case "sql":
			writers = append(writers, gateway.NewSQLDatasetWriter(cfg.OutputDirectory))
		}
	}

	generationUseCase := usecase.NewGenerationUseCase(cfg, writers...)

	// --- Execute the Usecase ---
	_, report, err := generationUseCase.Run(context.Background())
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	reportPath := filepath.Join(cfg.OutputDirectory, "quality_report.json")
	if err := os.WriteFile(reportPath, output, 0o644); err != nil {
		log.Fatalf("Failed to write quality report: %v", err)
	}

	fmt.Println(string(output))
}
