package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/export"
	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

type packOptions struct {
	*rootOptions
	container containerFlags
	zoneFlags []string
	pdfPath   string
	labelPath string
	pinned    *model.Container // used when no container flag is given
}

func newPackCmd(root *rootOptions) *cobra.Command {
	o := &packOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "pack ITEMS",
		Short: "Pack an item list into a container",
		Long: `Pack every unit of an item list into one container.

ITEMS is a CSV or Excel file, or "-" for PID,weight,length,width,height,quantity
lines on stdin. Without --container or --preset the first inventory container
that holds all items is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(cmd, args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, items)
		},
	}
	o.container.register(cmd)
	cmd.Flags().StringSliceVarP(&o.zoneFlags, "zone", "z", nil, "Inventory zones to choose from (default from config, empty = all)")
	cmd.Flags().StringVar(&o.pdfPath, "pdf", "", "Write a PDF packing report")
	cmd.Flags().StringVar(&o.labelPath, "labels", "", "Write a PDF of QR-coded unit labels")
	return cmd
}

func (o *packOptions) run(cmd *cobra.Command, items []model.Item) error {
	p, err := o.packer()
	if err != nil {
		return err
	}
	inv, _, err := o.loadInventory()
	if err != nil {
		return err
	}

	var packing export.Packing
	if o.container.set() || o.pinned != nil {
		c, err := o.selectedContainer(&inv)
		if err != nil {
			return err
		}
		tree, err := p.Pack(items, c.Limits(), p.Settings.Orientation)
		if err != nil {
			return fmt.Errorf("packing into %s: %w", c, err)
		}
		packing = export.Packing{Container: c, Tree: tree}
	} else {
		candidates, err := inv.CandidateContainers(o.zones(o.zoneFlags))
		if err != nil {
			return inputErrorf("%v", err)
		}
		slot, err := p.SelectContainer(candidates, items)
		if err != nil {
			return err
		}
		printRejected(cmd.OutOrStdout(), slot.Rejected)
		packing = export.Packing{Container: slot.Container, Tree: slot.Tree}
	}

	logging.UserSuccess("Packed %d units into %s", countUnits(items), packing.Container)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, packing.Tree.String())
	if err := printSpaces(out, packing.Tree); err != nil {
		return err
	}

	return writeReports([]export.Packing{packing}, p.Settings, o.pdfPath, o.labelPath)
}

func (o *packOptions) selectedContainer(inv *model.Inventory) (model.Container, error) {
	if !o.container.set() {
		return *o.pinned, nil
	}
	return o.container.resolve(inv)
}

// writeReports writes the optional PDF report and label sheet.
func writeReports(packings []export.Packing, settings model.PackSettings, pdfPath, labelPath string) error {
	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, packings, settings); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logging.UserSuccess("Report written to %s", pdfPath)
	}
	if labelPath != "" {
		if err := export.ExportLabels(labelPath, packings); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		logging.UserSuccess("Labels written to %s", labelPath)
	}
	return nil
}

// printSpaces lists the space tree, one indented row per space.
func printSpaces(out io.Writer, tree *space.Tree) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPACE\tTYPE\tUSED\tMAX\tITEMS")
	fmt.Fprintln(w, "-----\t----\t----\t---\t-----")
	tree.Walk(tree.Root(), func(n *space.Node, depth int) {
		var items []string
		for _, it := range n.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.ID, it.Units()))
		}
		fmt.Fprintf(w, "%s#%d\t%s\t%.2fx%.2fx%.2f\t%sx%sx%s\t%s\n",
			strings.Repeat("  ", depth), n.ID, n.Orientation,
			tree.TotalLength(n.ID), tree.TotalWidth(n.ID), tree.TotalHeight(n.ID),
			model.FormatMeasure(n.MaxLength), model.FormatMeasure(n.MaxWidth), model.FormatMeasure(n.MaxHeight),
			strings.Join(items, ", "))
	})
	return w.Flush()
}
