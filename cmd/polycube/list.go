package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polycube/enumerate"
)

// listCmd enumerates to the target size and renders every canonical
// representative of that generation as ASCII art.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Render every canonical shape of the target size",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := enumerate.Generate(size,
			enumerate.WithContext(cmd.Context()),
			enumerate.WithDim(activeDim()),
			enumerate.WithShapes(),
		)
		if err != nil {
			return err
		}
		gen := res.Generation(size)
		logger.Debug("rendering generation",
			zap.Int("size", size),
			zap.Int("shapes", len(gen)),
		)
		for i, s := range gen {
			fmt.Printf("#%d\n%s\n", i+1, s)
		}
		fmt.Printf("%d shapes of size %d\n", len(gen), size)
		return nil
	},
}
