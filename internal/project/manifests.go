package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/cubefit/internal/model"
)

// DefaultManifestPath returns the default file path for the manifest store.
// This is located at ~/.cubefit/manifests.json.
func DefaultManifestPath() string {
	return filepath.Join(DefaultConfigDir(), "manifests.json")
}

// SaveManifests writes the manifest store to a JSON or YAML file.
func SaveManifests(path string, store model.ManifestStore) error {
	return writeDocument(path, store)
}

// LoadManifests reads a manifest store from a file.
// If the file does not exist, returns an empty store.
func LoadManifests(path string) (model.ManifestStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewManifestStore(), nil
		}
		return model.ManifestStore{}, err
	}
	var store model.ManifestStore
	if err := decodeDocument(path, data, &store); err != nil {
		return model.ManifestStore{}, err
	}
	if store.Manifests == nil {
		store.Manifests = []model.Manifest{}
	}
	return store, nil
}
