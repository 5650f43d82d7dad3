package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/project"
)

func newManifestCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Save, list and pack named item lists",
	}
	cmd.AddCommand(
		newManifestListCmd(root),
		newManifestSaveCmd(root),
		newManifestShowCmd(root),
		newManifestDeleteCmd(root),
		newManifestPackCmd(root),
	)
	return cmd
}

func (o *rootOptions) loadManifests() (model.ManifestStore, string, error) {
	path := o.manifestFile()
	store, err := project.LoadManifests(path)
	if err != nil {
		return store, path, fmt.Errorf("loading manifests %s: %w", path, err)
	}
	return store, path, nil
}

// findManifest looks a manifest up by name, then by ID.
func findManifest(store *model.ManifestStore, key string) (*model.Manifest, error) {
	if m := store.FindByName(key); m != nil {
		return m, nil
	}
	if m := store.FindByID(key); m != nil {
		return m, nil
	}
	return nil, inputErrorf("no manifest named %q", key)
}

func newManifestListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := root.loadManifests()
			if err != nil {
				return err
			}
			if len(store.Manifests) == 0 {
				logging.UserInfo("No manifests saved. Create one with: cubefit manifest save NAME ITEMS")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLINES\tUNITS\tCONTAINER\tUPDATED")
			fmt.Fprintln(w, "--\t----\t-----\t-----\t---------\t-------")
			for _, m := range store.Manifests {
				container := "-"
				if m.Container != nil {
					container = m.Container.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", m.ID, m.Name, len(m.Items), m.TotalUnits(), container, m.UpdatedAt)
			}
			return w.Flush()
		},
	}
}

func newManifestSaveCmd(root *rootOptions) *cobra.Command {
	var (
		description string
		container   containerFlags
	)
	cmd := &cobra.Command{
		Use:   "save NAME ITEMS",
		Short: "Save an item list under a name, optionally pinned to a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(cmd, args[1])
			if err != nil {
				return err
			}
			store, path, err := root.loadManifests()
			if err != nil {
				return err
			}

			m := model.NewManifest(args[0], description, items)
			if container.set() {
				inv, _, err := root.loadInventory()
				if err != nil {
					return err
				}
				c, err := container.resolve(&inv)
				if err != nil {
					return err
				}
				m.Container = &c
			}

			if existing := store.FindByName(args[0]); existing != nil {
				m.ID = existing.ID
				m.CreatedAt = existing.CreatedAt
				*existing = m
				logging.UserInfo("Replaced manifest %s", m.Name)
			} else {
				store.Add(m)
				logging.UserSuccess("Saved manifest %s (%s) with %d units", m.Name, m.ID, m.TotalUnits())
			}
			return project.SaveManifests(path, store)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Manifest description")
	container.register(cmd)
	return cmd
}

func newManifestShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the items of a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := root.loadManifests()
			if err != nil {
				return err
			}
			m, err := findManifest(&store, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", m.Name, m.ID)
			if m.Description != "" {
				fmt.Fprintln(out, m.Description)
			}
			if m.Container != nil {
				fmt.Fprintf(out, "Pinned to %s\n", m.Container)
			}
			for _, it := range m.Items {
				fmt.Fprintln(out, "  "+it.String())
			}
			return nil
		},
	}
}

func newManifestDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, path, err := root.loadManifests()
			if err != nil {
				return err
			}
			m, err := findManifest(&store, args[0])
			if err != nil {
				return err
			}
			name := m.Name
			store.Remove(m.ID)
			if err := project.SaveManifests(path, store); err != nil {
				return err
			}
			logging.UserSuccess("Deleted manifest %s", name)
			return nil
		},
	}
}

func newManifestPackCmd(root *rootOptions) *cobra.Command {
	o := &packOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "pack NAME",
		Short: "Pack a saved manifest into its pinned container or the first that fits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := root.loadManifests()
			if err != nil {
				return err
			}
			m, err := findManifest(&store, args[0])
			if err != nil {
				return err
			}
			o.pinned = m.Container
			return o.run(cmd, m.Items)
		},
	}
	o.container.register(cmd)
	cmd.Flags().StringSliceVarP(&o.zoneFlags, "zone", "z", nil, "Inventory zones to choose from (default from config, empty = all)")
	cmd.Flags().StringVar(&o.pdfPath, "pdf", "", "Write a PDF packing report")
	cmd.Flags().StringVar(&o.labelPath, "labels", "", "Write a PDF of QR-coded unit labels")
	return cmd
}
