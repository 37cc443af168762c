package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/vellobench/internal/bench"
	"github.com/cwbudde/vellobench/internal/refstore"
	"github.com/cwbudde/vellobench/internal/simd"
	"github.com/cwbudde/vellobench/internal/timing"
)

var (
	runIDs        []string
	runSimd       string
	calibrationMS uint64
	measurementMS uint64
	saveName      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run benchmarks and print their timings",
	Long: `Runs the selected benchmarks on the selected SIMD levels. Without
--id every catalogued benchmark runs; without --simd every level the host
supports runs, best first.`,
	RunE: runBenchmarks,
}

func init() {
	runCmd.Flags().StringSliceVar(&runIDs, "id", nil, "Benchmark ids to run (default: all)")
	runCmd.Flags().StringVar(&runSimd, "simd", "", "SIMD level to run (default: all supported)")
	runCmd.Flags().Uint64Var(&calibrationMS, "calibration-ms", timing.DefaultCalibrationMS, "Calibration window in milliseconds")
	runCmd.Flags().Uint64Var(&measurementMS, "measurement-ms", timing.DefaultMeasurementMS, "Measurement window in milliseconds")
	runCmd.Flags().StringVar(&saveName, "save", "", "Save the results as a named reference set")

	rootCmd.AddCommand(runCmd)
}

// selectLevels resolves the --simd flag against the levels the host supports.
func selectLevels() ([]simd.Level, error) {
	if runSimd == "" {
		return simd.Available(), nil
	}
	available := simd.Available()
	for _, l := range available {
		if l.Suffix() == runSimd {
			return []simd.Level{l}, nil
		}
	}
	suffixes := make([]string, len(available))
	for i, l := range available {
		suffixes[i] = l.Suffix()
	}
	return nil, fmt.Errorf("unsupported SIMD level %q (supported: %s)", runSimd, strings.Join(suffixes, ", "))
}

// selectIDs resolves the --id flag against the catalogue. Unknown ids are
// reported but do not abort the run.
func selectIDs() []string {
	if len(runIDs) == 0 {
		infos := bench.List()
		ids := make([]string, len(infos))
		for i, in := range infos {
			ids[i] = in.ID
		}
		return ids
	}

	known := make(map[string]bool)
	for _, in := range bench.List() {
		known[in.ID] = true
	}
	var ids []string
	for _, id := range runIDs {
		if !known[id] {
			slog.Warn("Unknown benchmark id, skipping", "id", id)
			fmt.Printf("warning: unknown benchmark id %q\n", id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// formatTime renders a nanosecond mean with an auto-scaled unit.
func formatTime(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%8.2f ns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%8.2f µs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%8.2f ms", ns/1e6)
	default:
		return fmt.Sprintf("%8.2f s ", ns/1e9)
	}
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	levels, err := selectLevels()
	if err != nil {
		return err
	}
	ids := selectIDs()
	if len(ids) == 0 {
		return fmt.Errorf("nothing to run")
	}

	cfg := timing.Config{CalibrationMS: calibrationMS, MeasurementMS: measurementMS}
	slog.Info("Starting benchmark run",
		"benchmarks", len(ids),
		"levels", len(levels),
		"calibration_ms", cfg.CalibrationMS,
		"measurement_ms", cfg.MeasurementMS,
	)

	start := time.Now()
	var results []timing.Result
	for _, id := range ids {
		for _, level := range levels {
			res := bench.Run(id, level, cfg)
			if res == nil {
				// selectIDs already filtered, this means catalogue drift.
				fmt.Printf("warning: unknown benchmark id %q\n", id)
				continue
			}
			name := res.ID + "_" + res.SimdVariant
			fmt.Printf("%50s  %s  (%d iterations)\n", name, formatTime(res.Statistics.MeanNS), res.Statistics.Iterations)
			results = append(results, *res)
		}
	}
	slog.Info("Benchmark run complete", "results", len(results), "elapsed", time.Since(start))

	if saveName != "" && len(results) > 0 {
		dir, err := refstore.DefaultDir()
		if err != nil {
			return err
		}
		store, err := refstore.NewFSStore(dir)
		if err != nil {
			return err
		}
		if err := store.Save(saveName, results); err != nil {
			return fmt.Errorf("failed to save reference set: %w", err)
		}
		fmt.Printf("Saved %d results as reference set %q\n", len(results), saveName)
	}

	return nil
}
