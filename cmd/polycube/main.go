// Command polycube is the command surface over the enumeration engine:
// count equivalence classes, list canonical shapes, or grow random ones.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	size    int
	use3D   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "polycube",
	Short: "polycube - enumerate polyominoes and polycubes",
	Long: `polycube enumerates all distinct polyominoes (2D) or polycubes (3D)
of a given size, counting one representative per equivalence class
under rotation and reflection.

The engine grows shapes one cell at a time, canonicalizes every
candidate against the full symmetry group, and deduplicates by
canonical key — generation by generation up to the target size.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&size, "size", "n", 4, "target shape size in cells")
	rootCmd.PersistentFlags().BoolVar(&use3D, "3d", false, "enumerate polycubes instead of polyominoes")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snakeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
