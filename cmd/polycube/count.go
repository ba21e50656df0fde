package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/enumerate"
)

var workers int

// countCmd enumerates up to the target size and reports one line per
// generation: shapes found, raw candidates tried, and throughput.
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count distinct shapes of each size up to the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := enumerate.Generate(size,
			enumerate.WithContext(cmd.Context()),
			enumerate.WithDim(activeDim()),
			enumerate.WithWorkers(workers),
			enumerate.WithOnGeneration(reportGeneration),
		)
		if err != nil {
			return err
		}
		fmt.Println(res.Counts[size-1])
		return nil
	},
}

func init() {
	countCmd.Flags().IntVarP(&workers, "workers", "w", 1, "goroutines per generation (1 = sequential)")
}

// activeDim maps the --3d flag onto the engine's dimensionality.
func activeDim() cell.Dim {
	if use3D {
		return cell.Dim3
	}
	return cell.Dim2
}

// reportGeneration logs one generation's statistics with throughput.
func reportGeneration(gs enumerate.GenerationStats) {
	rate := 0.0
	if gs.Elapsed > 0 {
		rate = float64(gs.Candidates) / gs.Elapsed.Seconds()
	}
	logger.Info("generation complete",
		zap.Int("size", gs.Size),
		zap.Int("found", gs.Found),
		zap.Int("candidates", gs.Candidates),
		zap.Duration("elapsed", gs.Elapsed),
		zap.Float64("candidates_per_sec", rate),
	)
}
