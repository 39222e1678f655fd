package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/hoard/inventory"
	"github.com/plus3/hoard/item"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	itemCount := flag.Int("items", 0, "The initial number of items to add.")
	catalogPath := flag.String("catalog", "", "Path to a TOML file with extra item kinds.")
	seed := flag.Uint64("seed", 0, "Random seed.")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	setupLogger(cfg.Log)

	// Flags win over the config file when set.
	runFor, err := cfg.Stress.ParseDuration()
	if err != nil {
		slog.Error("Bad config", slog.Any("err", err))
		os.Exit(1)
	}
	if *duration > 0 {
		runFor = *duration
	}
	if *itemCount > 0 {
		cfg.Stress.Items = *itemCount
	}
	if *catalogPath != "" {
		cfg.Stress.Catalog = *catalogPath
	}
	if *seed != 0 {
		cfg.Stress.Seed = *seed
	}

	catalog, err := loadCatalog(cfg.Stress.Catalog)
	if err != nil {
		slog.Error("Failed to load catalog", slog.String("path", cfg.Stress.Catalog), slog.Any("err", err))
		os.Exit(1)
	}
	slog.Info("Catalog ready", slog.Int("kinds", catalog.Len()))

	inv := inventory.New()
	workload := NewWorkload(inv, catalog, cfg.Mix, cfg.Stress.Seed)

	slog.Info("Populating inventory", slog.Int("items", cfg.Stress.Items))
	workload.Populate(cfg.Stress.Items)
	slog.Debug("Population complete", slog.Int("types", len(inv.Types())))

	report := &Report{
		Duration: runFor,
		Items:    cfg.Stress.Items,
		Kinds:    catalog.Len(),
		Seed:     cfg.Stress.Seed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	slog.Info("Running workload", slog.Duration("duration", runFor))
	ctx, cancel := context.WithTimeout(context.Background(), runFor)
	defer cancel()

	startTime := time.Now()
	var totalOps int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			workload.Step()
			totalOps++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalOps = totalOps
	report.Ops = workload.Ops()
	report.FinalItems = inv.Len()
	report.FinalTypes = TypeCounts(inv)
	if data, err := inv.Snapshot().Encode(); err == nil {
		report.SnapshotBytes = len(data)
	} else {
		slog.Warn("Failed to encode final snapshot", slog.Any("err", err))
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	slog.Info("Workload finished", slog.Int64("ops", totalOps))

	fmt.Println("\n\n--- Inventory Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		slog.Error("Failed to generate report", slog.Any("err", err))
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

func loadCatalog(path string) (*item.Catalog, error) {
	if path == "" {
		return item.Builtin(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	return item.LoadCatalog(file)
}
