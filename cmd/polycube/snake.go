package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polycube/enumerate"
)

var (
	seed     int64
	attempts int
)

// snakeCmd grows one random self-avoiding snake and renders it. A stuck
// walk is retried with consecutive seeds up to --attempts times.
var snakeCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grow and render a random self-avoiding snake",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		for try := 0; try < attempts; try++ {
			snake, err := enumerate.RandomSnake(size,
				enumerate.WithDim(activeDim()),
				enumerate.WithSeed(s+int64(try)),
			)
			if errors.Is(err, enumerate.ErrSnakeStuck) {
				logger.Debug("snake stuck, retrying",
					zap.Int64("seed", s+int64(try)),
					zap.Int("attempt", try+1),
				)
				continue
			}
			if err != nil {
				return err
			}
			fmt.Print(snake)
			return nil
		}
		return fmt.Errorf("no snake of size %d after %d attempts: %w", size, attempts, enumerate.ErrSnakeStuck)
	},
}

func init() {
	snakeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-derived)")
	snakeCmd.Flags().IntVar(&attempts, "attempts", 16, "retries when the walk walls itself in")
}
