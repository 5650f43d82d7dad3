package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/project"
)

func newInventoryCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage container presets and product dimensions",
	}
	cmd.AddCommand(
		newInventoryListCmd(root),
		newInventoryAddContainerCmd(root),
		newInventoryAddProductCmd(root),
		newInventoryImportCmd(root),
		newInventoryExportCmd(root),
	)
	return cmd
}

func newInventoryListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List container presets and products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, path, err := root.loadInventory()
			if err != nil {
				return err
			}
			logging.Debug("inventory loaded", "path", path)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCONTAINER\tZONE\tSIZE\tMAX WEIGHT")
			fmt.Fprintln(w, "--\t---------\t----\t----\t----------")
			for _, c := range inv.Containers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%sx%sx%s\t%s\n", c.ID, c.Name, c.Zone,
					model.FormatMeasure(c.Length), model.FormatMeasure(c.Width), model.FormatMeasure(c.Height),
					model.FormatMeasure(c.Weight))
			}
			if len(inv.Products) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "PRODUCT\tTITLE\t\tSIZE\tWEIGHT")
				fmt.Fprintln(w, "-------\t-----\t\t----\t------")
				for _, p := range inv.Products {
					fmt.Fprintf(w, "%s\t%s\t\t%sx%sx%s\t%s\n", p.ID, p.Title,
						model.FormatMeasure(p.Length), model.FormatMeasure(p.Width), model.FormatMeasure(p.Height),
						model.FormatMeasure(p.Weight))
				}
			}
			return w.Flush()
		},
	}
}

func newInventoryAddContainerCmd(root *rootOptions) *cobra.Command {
	var zone string
	cmd := &cobra.Command{
		Use:   "add-container NAME SIZE",
		Short: "Add a container preset (SIZE is LxWxH or LxWxH:weight)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLimits(args[1])
			if err != nil {
				return err
			}
			if !l.Valid() {
				return inputErrorf("container dimensions must be positive: %s", args[1])
			}
			inv, path, err := root.loadInventory()
			if err != nil {
				return err
			}
			if inv.FindContainerByName(args[0]) != nil {
				return inputErrorf("container preset %q already exists", args[0])
			}

			cp := model.NewContainerPreset(args[0], zone, l.Length, l.Width, l.Height, l.Weight)
			inv.Containers = append(inv.Containers, cp)
			if err := project.SaveInventory(path, inv); err != nil {
				return fmt.Errorf("saving inventory: %w", err)
			}
			logging.UserSuccess("Added container %s (%s)", cp.Name, cp.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&zone, "zone", "z", "", "Zone the container belongs to")
	return cmd
}

func newInventoryAddProductCmd(root *rootOptions) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add-product ID SIZE",
		Short: "Record the dimensions of a product (SIZE is LxWxH or LxWxH:weight)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLimits(args[1])
			if err != nil {
				return err
			}
			inv, path, err := root.loadInventory()
			if err != nil {
				return err
			}

			product := model.Product{ID: args[0], Title: title, Length: l.Length, Width: l.Width, Height: l.Height, Weight: l.Weight}
			if existing := inv.FindProduct(args[0]); existing != nil {
				*existing = product
				logging.UserInfo("Updated product %s", product.ID)
			} else {
				inv.Products = append(inv.Products, product)
				logging.UserSuccess("Added product %s", product.ID)
			}
			if err := project.SaveInventory(path, inv); err != nil {
				return fmt.Errorf("saving inventory: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Product title")
	return cmd
}

func newInventoryImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge containers and products from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, path, err := root.loadInventory()
			if err != nil {
				return err
			}
			before := len(inv.Containers) + len(inv.Products)
			merged, err := project.ImportInventory(args[0], inv)
			if err != nil {
				return fmt.Errorf("importing inventory: %w", err)
			}
			if err := project.SaveInventory(path, merged); err != nil {
				return fmt.Errorf("saving inventory: %w", err)
			}
			logging.UserSuccess("Imported %d new entries", len(merged.Containers)+len(merged.Products)-before)
			return nil
		},
	}
}

func newInventoryExportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the inventory to a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, _, err := root.loadInventory()
			if err != nil {
				return err
			}
			if err := project.SaveInventory(args[0], inv); err != nil {
				return fmt.Errorf("exporting inventory: %w", err)
			}
			logging.UserSuccess("Inventory written to %s", args[0])
			return nil
		},
	}
}
