package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/project"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Back up or restore config, inventory and manifests",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "backup FILE",
			Short: "Write config, inventory and manifests to one JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, _, err := root.loadInventory()
				if err != nil {
					return err
				}
				store, _, err := root.loadManifests()
				if err != nil {
					return err
				}
				if err := project.ExportAllData(args[0], root.config, inv, store); err != nil {
					return err
				}
				logging.UserSuccess("Backup written to %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "restore FILE",
			Short: "Restore config, inventory and manifests from a backup",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				backup, err := project.ImportAllData(args[0])
				if err != nil {
					return err
				}

				configPath := root.configPath
				if configPath == "" {
					configPath = project.DefaultConfigPath()
				}
				if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
					return fmt.Errorf("restoring config: %w", err)
				}
				root.config = backup.Config

				invPath := root.inventoryFile()
				if invPath == "" {
					invPath = project.DefaultInventoryPath()
				}
				if err := project.SaveInventory(invPath, backup.Inventory); err != nil {
					return fmt.Errorf("restoring inventory: %w", err)
				}
				if err := project.SaveManifests(root.manifestFile(), backup.Manifests); err != nil {
					return fmt.Errorf("restoring manifests: %w", err)
				}
				logging.UserSuccess("Restored backup from %s (created %s)", args[0], backup.CreatedAt)
				return nil
			},
		},
	)
	return cmd
}
