package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/slotting"
)

func newSlotCmd(root *rootOptions) *cobra.Command {
	var (
		quantity  int
		zoneFlags []string
	)
	cmd := &cobra.Command{
		Use:   "slot PRODUCT",
		Short: "Find the container a product should be stored in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity <= 0 {
				return inputErrorf("--qty must be positive, got %d", quantity)
			}
			p, err := root.packer()
			if err != nil {
				return err
			}
			inv, _, err := root.loadInventory()
			if err != nil {
				return err
			}

			s := slotting.New(&inv, &inv, p, logging.With("component", "slotting"))
			res, err := s.FindProductSlot(args[0], quantity, root.zones(zoneFlags))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printRejected(out, res.Rejected)
			logging.UserSuccess("%s x%d goes into %s", res.Product.ID, quantity, res.Container)
			fmt.Fprintln(out, res.Summary)
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "Number of units to store")
	cmd.Flags().StringSliceVarP(&zoneFlags, "zone", "z", nil, "Inventory zones to choose from (default from config, empty = all)")
	return cmd
}
