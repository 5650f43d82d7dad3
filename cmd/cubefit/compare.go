package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/export"
	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		container containerFlags
		zoneFlags []string
		pdfPath   string
	)
	cmd := &cobra.Command{
		Use:   "compare ITEMS",
		Short: "Compare inventory containers, or orientations for one container",
		Long: `Pack the same item list into every inventory container and list the
results side by side. With --container or --preset the item list is packed
into that one container once per orientation instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := root.packer()
			if err != nil {
				return err
			}
			inv, _, err := root.loadInventory()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if container.set() {
				c, err := container.resolve(&inv)
				if err != nil {
					return err
				}
				results := p.CompareScenarios(engine.BuildOrientationScenarios(p.Settings), items, c)
				return printScenarios(out, results)
			}

			candidates, err := inv.CandidateContainers(root.zones(zoneFlags))
			if err != nil {
				return inputErrorf("%v", err)
			}
			results := p.CompareContainers(candidates, items)
			best := engine.BestFit(results)
			if err := printComparison(out, results, best); err != nil {
				return err
			}
			if best == nil {
				logging.UserWarning("None of %d containers holds the items", len(results))
				return nil
			}
			logging.UserSuccess("Best fit: %s at %.2f%% volume", best.Container, best.VolumePercent)

			if pdfPath != "" {
				var packings []export.Packing
				for _, r := range results {
					if r.Fits {
						packings = append(packings, export.Packing{Container: r.Container, Tree: r.Tree})
					}
				}
				return writeReports(packings, p.Settings, pdfPath, "")
			}
			return nil
		},
	}
	container.register(cmd)
	cmd.Flags().StringSliceVarP(&zoneFlags, "zone", "z", nil, "Inventory zones to compare (default from config, empty = all)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF report of every fitting container")
	return cmd
}

func printComparison(out io.Writer, results []engine.ComparisonResult, best *engine.ComparisonResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONTAINER\tFITS\tVOLUME\tSPACES\t")
	fmt.Fprintln(w, "---------\t----\t------\t------\t")
	for i := range results {
		r := &results[i]
		mark := ""
		if r == best {
			mark = "★ best"
		}
		if !r.Fits {
			fmt.Fprintf(w, "%s\tno\t-\t-\t%v\n", r.Container, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\tyes\t%.2f%%\t%d\t%s\n", r.Container, r.VolumePercent, r.Spaces, mark)
	}
	return w.Flush()
}

func printScenarios(out io.Writer, results []engine.ScenarioResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tORIENTATION\tFITS\tVOLUME\tSUMMARY")
	fmt.Fprintln(w, "--------\t-----------\t----\t------\t-------")
	for _, r := range results {
		fits, volume := "no", "-"
		if r.Fits {
			fits, volume = "yes", fmt.Sprintf("%.2f%%", r.VolumePercent)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Scenario.Name, r.Scenario.Settings.Orientation, fits, volume, r.Summary)
	}
	return w.Flush()
}

func packingOf(c model.Container, tree *space.Tree) []export.Packing {
	return []export.Packing{{Container: c, Tree: tree}}
}
