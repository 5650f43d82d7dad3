package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/importer"
	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/project"
)

// rootOptions holds the persistent flags and the state loaded from them.
type rootOptions struct {
	configPath    string
	inventoryPath string
	manifestPath  string
	orientation   string
	verbose       bool
	jsonOutput    bool

	config model.AppConfig
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cubefit",
		Short: "3D container packing and slotting",
		Long: `cubefit packs rectangular items into containers.

Items are laid into a tree of sub-spaces that is split as the container
fills up. The CLI can:
  - pack an item list into a given container, or pick the first
    inventory container that holds it
  - slot a known product into a storage zone
  - count how many units of one item fit
  - compare containers and orientations side by side`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "Config file (.json, .yaml or .yml); default ~/.cubefit/config.json")
	f.StringVar(&o.inventoryPath, "inventory", "", "Inventory file; default from config or ~/.cubefit/inventory.json")
	f.StringVar(&o.manifestPath, "manifests", "", "Manifest store; default ~/.cubefit/manifests.json")
	f.StringVarP(&o.orientation, "orientation", "o", "", "Packing orientation: horizontal or vertical")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose output")
	f.BoolVar(&o.jsonOutput, "json", false, "Output logs in JSON format")
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newPackCmd(o),
		newSlotCmd(o),
		newCapacityCmd(o),
		newCompareCmd(o),
		newEstimateCmd(o),
		newInventoryCmd(o),
		newManifestCmd(o),
		newExportCmd(o),
	)
	return cmd
}

// load reads the app config and sets up logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	o.config = cfg

	logging.Setup(o.verbose || cfg.Verbose, o.jsonOutput || cfg.LogFormat == "json", cmd.ErrOrStderr())
	logging.Debug("config loaded", "path", path)
	return nil
}

// settings returns the pack settings from the config and the orientation flag.
func (o *rootOptions) settings() (model.PackSettings, error) {
	s := model.DefaultSettings()
	o.config.ApplyToSettings(&s)
	if o.orientation != "" {
		orient, err := model.ParseOrientation(o.orientation)
		if err != nil {
			return s, inputErrorf("%v", err)
		}
		s.Orientation = orient
	}
	return s, nil
}

func (o *rootOptions) packer() (*engine.Packer, error) {
	s, err := o.settings()
	if err != nil {
		return nil, err
	}
	return engine.New(s, logging.With("component", "engine")), nil
}

func (o *rootOptions) inventoryFile() string {
	if o.inventoryPath != "" {
		return o.inventoryPath
	}
	return o.config.InventoryPath
}

func (o *rootOptions) loadInventory() (model.Inventory, string, error) {
	inv, path, err := project.LoadOrCreateInventory(o.inventoryFile())
	if err != nil {
		return inv, path, fmt.Errorf("loading inventory %s: %w", path, err)
	}
	return inv, path, nil
}

func (o *rootOptions) manifestFile() string {
	if o.manifestPath != "" {
		return o.manifestPath
	}
	return project.DefaultManifestPath()
}

// zones returns the flag zones, falling back to the configured defaults.
func (o *rootOptions) zones(flagZones []string) []string {
	if len(flagZones) > 0 {
		return flagZones
	}
	return o.config.DefaultZones
}

// inputError marks a problem with the command line or an input file.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func inputErrorf(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

// exitCode maps input errors to ExitInvalidInput and everything else through
// the engine's cause mapping.
func exitCode(err error) int {
	var ie *inputError
	if errors.As(err, &ie) {
		return engine.ExitInvalidInput
	}
	return engine.ExitCode(err)
}

// parseLimits parses "LxWxH" or "LxWxH:weight".
func parseLimits(s string) (model.Limits, error) {
	dims, weightStr, hasWeight := strings.Cut(strings.TrimSpace(s), ":")
	parts := strings.Split(strings.ToLower(dims), "x")
	if len(parts) != 3 {
		return model.Limits{}, inputErrorf("invalid dimensions %q, want LxWxH or LxWxH:weight", s)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return model.Limits{}, inputErrorf("invalid dimension %q in %q", p, s)
		}
		vals[i] = v
	}

	l := model.Limits{Length: vals[0], Width: vals[1], Height: vals[2]}
	if hasWeight {
		w, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil || w < 0 {
			return model.Limits{}, inputErrorf("invalid weight %q in %q", weightStr, s)
		}
		l.Weight = w
	}
	return l, nil
}

// containerFlags selects a container either by inventory preset or by size.
type containerFlags struct {
	size   string
	preset string
}

func (c *containerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.size, "container", "c", "", "Container size as LxWxH or LxWxH:weight")
	cmd.Flags().StringVarP(&c.preset, "preset", "p", "", "Inventory container name or ID")
}

func (c *containerFlags) set() bool {
	return c.size != "" || c.preset != ""
}

// resolve returns the selected container, looking presets up in inv.
func (c *containerFlags) resolve(inv *model.Inventory) (model.Container, error) {
	if c.preset != "" {
		cp := inv.FindContainerByName(c.preset)
		if cp == nil {
			cp = inv.FindContainerByID(c.preset)
		}
		if cp == nil {
			return model.Container{}, inputErrorf("no container preset named %q", c.preset)
		}
		return cp.ToContainer(), nil
	}
	if c.size == "" {
		return model.Container{}, inputErrorf("a container is required: use --container or --preset")
	}
	l, err := parseLimits(c.size)
	if err != nil {
		return model.Container{}, err
	}
	return model.NewContainer(c.size, l.Length, l.Width, l.Height, l.Weight), nil
}

// loadItems reads an item list. "-" reads the plain
// PID,weight,length,width,height,quantity format from stdin.
func loadItems(cmd *cobra.Command, path string) ([]model.Item, error) {
	if path == "-" {
		items, err := importer.ParseCSVInput(cmd.InOrStdin())
		if err != nil {
			return nil, inputErrorf("reading items from stdin: %v", err)
		}
		if len(items) == 0 {
			return nil, inputErrorf("no items on stdin")
		}
		return items, nil
	}

	result := importer.ImportFile(path)
	for _, w := range result.Warnings {
		logging.Warn("import warning", "file", path, "warning", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			logging.UserWarning("%s", e)
		}
		return nil, inputErrorf("%s: %d import errors", path, len(result.Errors))
	}
	if len(result.Items) == 0 {
		return nil, inputErrorf("%s: no items found", path)
	}
	logging.Debug("items imported", "file", path, "lines", len(result.Items))
	return result.Items, nil
}

func countUnits(items []model.Item) int {
	n := 0
	for _, it := range items {
		n += it.Units()
	}
	return n
}

// printRejected lists the candidates the selector skipped.
func printRejected(w io.Writer, rejected []engine.CandidateFailure) {
	for _, f := range rejected {
		fmt.Fprintf(w, "  skipped %s: %v\n", f.Container, f.Err)
	}
}
