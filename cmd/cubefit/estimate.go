package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/model"
)

func newEstimateCmd(root *rootOptions) *cobra.Command {
	var (
		container containerFlags
		waste     float64
	)
	cmd := &cobra.Command{
		Use:   "estimate ITEMS",
		Short: "Estimate how many containers an item list needs by volume and weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if waste < 0 {
				return inputErrorf("--waste must not be negative")
			}
			items, err := loadItems(cmd, args[0])
			if err != nil {
				return err
			}
			inv, _, err := root.loadInventory()
			if err != nil {
				return err
			}
			c, err := container.resolve(&inv)
			if err != nil {
				return err
			}

			est := model.EstimateContainers(items, c.Limits(), waste)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Container\t%s\n", c)
			fmt.Fprintf(w, "Item volume\t%.2f\n", est.TotalItemVolume)
			fmt.Fprintf(w, "Item weight\t%.3f\n", est.TotalItemWeight)
			fmt.Fprintf(w, "By volume\t%d (%.2f)\n", est.ContainersNeededMin, est.ContainersNeededExact)
			if est.ContainersByWeight > 0 {
				fmt.Fprintf(w, "By weight\t%d\n", est.ContainersByWeight)
			}
			fmt.Fprintf(w, "With %.0f%% waste\t%d\n", est.WastePercent, est.ContainersWithWaste)
			return w.Flush()
		},
	}
	container.register(cmd)
	cmd.Flags().Float64Var(&waste, "waste", 15, "Waste factor in percent")
	return cmd
}
