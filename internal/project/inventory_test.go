package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cubefit/internal/model"
	"gopkg.in/yaml.v3"
)

func TestDefaultInventoryPath(t *testing.T) {
	path := DefaultInventoryPath()
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".cubefit" {
		t.Errorf("expected parent dir .cubefit, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_inventory.json")

	inv := model.Inventory{
		Containers: []model.ContainerPreset{
			model.NewContainerPreset("Test bin", "picking", 40, 30, 10, 15),
		},
		Products: []model.Product{
			{ID: "25845880", Title: "Atlas", Length: 24.4, Width: 16.8, Height: 2, Weight: 0.5},
		},
	}

	// Save
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("inventory file was not created")
	}

	// Load
	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	if len(loaded.Containers) != 1 {
		t.Fatalf("expected 1 container, got %d", len(loaded.Containers))
	}
	if loaded.Containers[0].Name != "Test bin" {
		t.Errorf("expected container name 'Test bin', got %q", loaded.Containers[0].Name)
	}
	if loaded.Containers[0].Weight != 15 {
		t.Errorf("expected weight 15, got %f", loaded.Containers[0].Weight)
	}

	if len(loaded.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(loaded.Products))
	}
	if loaded.Products[0].Width != 16.8 {
		t.Errorf("expected width 16.8, got %f", loaded.Products[0].Width)
	}
}

func TestSaveAndLoadInventoryYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")

	inv := model.DefaultInventory()
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("expected valid YAML: %v", err)
	}
	if _, ok := raw["containers"]; !ok {
		t.Error("expected containers key in YAML output")
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Containers) != len(inv.Containers) {
		t.Errorf("expected %d containers, got %d", len(inv.Containers), len(loaded.Containers))
	}
	if loaded.Products == nil {
		t.Error("Products should not be nil after loading")
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	// Should have created defaults
	if len(inv.Containers) == 0 {
		t.Error("expected default containers, got none")
	}

	// Should have written the file
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default inventory file to be created")
	}
}

func TestLoadOrCreateInventoryExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.json")

	inv, got, err := LoadOrCreateInventory(path)
	if err != nil {
		t.Fatalf("LoadOrCreateInventory failed: %v", err)
	}
	if got != path {
		t.Errorf("expected path %s, got %s", path, got)
	}
	if len(inv.Containers) == 0 {
		t.Error("expected default containers")
	}
}

func TestImportInventory(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Inventory{
		Containers: []model.ContainerPreset{
			{ID: "bin-001", Name: "Existing bin", Length: 25, Width: 25, Height: 3.5},
		},
		Products: []model.Product{
			{ID: "p-001", Title: "Existing product", Length: 10, Width: 5, Height: 5},
		},
	}

	imported := model.Inventory{
		Containers: []model.ContainerPreset{
			{ID: "bin-001", Name: "Duplicate bin", Length: 25, Width: 25, Height: 3.5}, // same ID, should be skipped
			{ID: "bin-002", Name: "New bin", Length: 40, Width: 30, Height: 10},        // new, should be added
		},
		Products: []model.Product{
			{ID: "p-002", Title: "New product", Length: 1, Width: 1, Height: 1}, // new
		},
	}

	// Write import file
	importPath := filepath.Join(tmpDir, "import.json")
	data, _ := json.MarshalIndent(imported, "", "  ")
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}

	if len(merged.Containers) != 2 {
		t.Errorf("expected 2 containers after merge, got %d", len(merged.Containers))
	}
	if merged.Containers[0].Name != "Existing bin" {
		t.Errorf("expected first container to be 'Existing bin', got %q", merged.Containers[0].Name)
	}
	if merged.Containers[1].Name != "New bin" {
		t.Errorf("expected second container to be 'New bin', got %q", merged.Containers[1].Name)
	}

	if len(merged.Products) != 2 {
		t.Errorf("expected 2 products after merge, got %d", len(merged.Products))
	}
}

func TestImportInventoryYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.yml")
	data := []byte(`containers:
  - id: tote
    name: Tote 60x40x30
    zone: picking
    length: 60
    width: 40
    height: 30
    weight: 25
products:
  - id: "25845880"
    title: Atlas
    length: 24.4
    width: 16.8
    height: 2
    weight: 0.5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(path, model.Inventory{})
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}
	if merged.FindContainerByID("tote") == nil {
		t.Error("expected container 'tote' after import")
	}
	if p := merged.FindProduct("25845880"); p == nil || p.Length != 24.4 {
		t.Errorf("expected product 25845880 with length 24.4, got %+v", p)
	}
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()

	got, err := ImportInventory(filepath.Join(t.TempDir(), "missing.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(got.Containers) != len(existing.Containers) {
		t.Error("expected existing inventory to be returned unchanged")
	}
}
