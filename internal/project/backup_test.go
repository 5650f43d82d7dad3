package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cubefit/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultCapacityLimit = 500
	cfg.LogFormat = "json"

	inv := model.DefaultInventory()
	inv.Products = append(inv.Products, model.Product{ID: "25845880", Title: "Atlas", Length: 24.4, Width: 16.8, Height: 2, Weight: 0.5})

	manifests := model.NewManifestStore()
	manifests.Add(model.NewManifest("Books", "", []model.Item{model.NewItem("29854048", 22.9, 15.2, 2.5, 0.028)}))

	if err := ExportAllData(path, cfg, inv, manifests); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultCapacityLimit != 500 {
		t.Errorf("expected DefaultCapacityLimit=500, got %d", backup.Config.DefaultCapacityLimit)
	}
	if backup.Config.LogFormat != "json" {
		t.Errorf("expected LogFormat=json, got %s", backup.Config.LogFormat)
	}
	if len(backup.Inventory.Containers) != len(inv.Containers) {
		t.Errorf("expected %d containers, got %d", len(inv.Containers), len(backup.Inventory.Containers))
	}
	if backup.Inventory.FindProduct("25845880") == nil {
		t.Error("expected product 25845880 in backup")
	}
	if m := backup.Manifests.FindByName("Books"); m == nil || len(m.Items) != 1 {
		t.Errorf("expected manifest Books with 1 item, got %+v", m)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"log_format":"json"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	err := ExportAllData(path, model.DefaultAppConfig(), model.DefaultInventory(), model.NewManifestStore())
	if err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataNilCollections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2026-01-01T00:00:00Z","config":{"default_zones":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.DefaultZones == nil {
		t.Error("DefaultZones should not be nil after import")
	}
	if backup.Inventory.Containers == nil || backup.Inventory.Products == nil {
		t.Error("inventory collections should not be nil after import")
	}
	if backup.Manifests.Manifests == nil {
		t.Error("Manifests should not be nil after import")
	}
}
