package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(c *cfg) *cobra.Command {
	var generations uint64

	cmd := &cobra.Command{
		Use:   "run <pattern>",
		Short: "Advance a pattern a number of generations and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadPattern(args[0], c.v.GetString("rule"), c.log)
			if err != nil {
				return err
			}

			c.log.Info().Uint64("generations", generations).Msg("stepping")
			if err := u.Step(generations); err != nil {
				return err
			}

			lo, hi, ok := u.BoundingBox()
			if !ok {
				fmt.Printf("generation %s: population 0 (empty)\n", u.Generation())
				return nil
			}
			fmt.Printf("generation %s: population %s, bounding box (%d, %d)-(%d, %d)\n",
				u.Generation(), u.Population(), lo.X, lo.Y, hi.X, hi.Y)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&generations, "generations", 1, "number of generations to advance")
	return cmd
}
