package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
)

func newCapacityCmd(root *rootOptions) *cobra.Command {
	var (
		container containerFlags
		itemSize  string
		itemID    string
		pdfPath   string
	)
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Count how many units of one item fit into a container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemSize == "" {
				return inputErrorf("--item is required")
			}
			dims, err := parseLimits(itemSize)
			if err != nil {
				return err
			}
			it := model.NewItem(itemID, dims.Length, dims.Width, dims.Height, dims.Weight)

			inv, _, err := root.loadInventory()
			if err != nil {
				return err
			}
			c, err := container.resolve(&inv)
			if err != nil {
				return err
			}
			p, err := root.packer()
			if err != nil {
				return err
			}

			res, err := p.Capacity(it, c.Limits())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Count == 0 {
				logging.UserWarning("%s does not fit into %s", it, c)
				return nil
			}
			logging.UserSuccess("%d units of %s fit into %s", res.Count, it.ID, c)
			fmt.Fprintf(out, "estimate=%d count=%d attempts=%d\n", res.Estimate, res.Count, res.Attempts)
			fmt.Fprintln(out, res.Tree.String())

			if pdfPath != "" {
				return writeReports(packingOf(c, res.Tree), p.Settings, pdfPath, "")
			}
			return nil
		},
	}
	container.register(cmd)
	cmd.Flags().StringVarP(&itemSize, "item", "i", "", "Item size as LxWxH or LxWxH:weight")
	cmd.Flags().StringVar(&itemID, "id", "item", "Item ID shown in the output")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF report of the packing")
	return cmd
}
