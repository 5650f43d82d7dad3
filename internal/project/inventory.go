package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/cubefit/internal/model"
)

// DefaultInventoryPath returns the default file path for the inventory file.
// This is located at ~/.cubefit/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON or YAML file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	return writeDocument(path, inv)
}

// LoadInventory reads the inventory from the specified file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := decodeDocument(path, data, &inv); err != nil {
		return model.Inventory{}, err
	}
	if inv.Products == nil {
		inv.Products = []model.Product{}
	}
	return inv, nil
}

// LoadOrCreateInventory loads the inventory from path, falling back to the
// default location when path is empty.
func LoadOrCreateInventory(path string) (model.Inventory, string, error) {
	if path == "" {
		path = DefaultInventoryPath()
	}
	inv, err := LoadInventory(path)
	return inv, path, err
}

// ImportInventory imports an inventory from a user-specified file,
// merging it with the existing inventory. Duplicate IDs are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := decodeDocument(path, data, &imported); err != nil {
		return existing, err
	}
	return MergeInventory(existing, imported), nil
}

// MergeInventory appends the containers and products of imported whose IDs
// are not yet present in existing.
func MergeInventory(existing, imported model.Inventory) model.Inventory {
	containerIDs := make(map[string]bool, len(existing.Containers))
	for _, c := range existing.Containers {
		containerIDs[c.ID] = true
	}
	productIDs := make(map[string]bool, len(existing.Products))
	for _, p := range existing.Products {
		productIDs[p.ID] = true
	}

	for _, c := range imported.Containers {
		if !containerIDs[c.ID] {
			existing.Containers = append(existing.Containers, c)
			containerIDs[c.ID] = true
		}
	}
	for _, p := range imported.Products {
		if !productIDs[p.ID] {
			existing.Products = append(existing.Products, p)
			productIDs[p.ID] = true
		}
	}
	return existing
}
