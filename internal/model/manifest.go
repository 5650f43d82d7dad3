package model

import (
	"time"

	"github.com/google/uuid"
)

// Manifest is a named, reusable item list, optionally pinned to a container.
type Manifest struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	CreatedAt   string     `json:"created_at" yaml:"created_at"`
	UpdatedAt   string     `json:"updated_at" yaml:"updated_at"`
	Items       []Item     `json:"items" yaml:"items"`
	Container   *Container `json:"container,omitempty" yaml:"container,omitempty"`
}

// NewManifest creates a manifest holding a copy of the given items.
func NewManifest(name, description string, items []Item) Manifest {
	now := time.Now().UTC().Format(time.RFC3339)
	return Manifest{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       copyItems(items),
	}
}

// TotalUnits returns the number of units across all item lines.
func (m Manifest) TotalUnits() int {
	n := 0
	for _, it := range m.Items {
		n += it.Units()
	}
	return n
}

// ManifestStore holds a collection of manifests.
type ManifestStore struct {
	Manifests []Manifest `json:"manifests" yaml:"manifests"`
}

// NewManifestStore creates an empty manifest store.
func NewManifestStore() ManifestStore {
	return ManifestStore{
		Manifests: []Manifest{},
	}
}

// Add adds a manifest to the store.
func (ms *ManifestStore) Add(m Manifest) {
	ms.Manifests = append(ms.Manifests, m)
}

// Remove removes a manifest by ID. Returns true if found and removed.
func (ms *ManifestStore) Remove(id string) bool {
	for i, m := range ms.Manifests {
		if m.ID == id {
			ms.Manifests = append(ms.Manifests[:i], ms.Manifests[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the manifest with the given ID, or nil.
func (ms *ManifestStore) FindByID(id string) *Manifest {
	for i := range ms.Manifests {
		if ms.Manifests[i].ID == id {
			return &ms.Manifests[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first manifest with the given name, or nil.
func (ms *ManifestStore) FindByName(name string) *Manifest {
	for i := range ms.Manifests {
		if ms.Manifests[i].Name == name {
			return &ms.Manifests[i]
		}
	}
	return nil
}

// Names returns the manifest names in store order.
func (ms *ManifestStore) Names() []string {
	names := make([]string, len(ms.Manifests))
	for i, m := range ms.Manifests {
		names[i] = m.Name
	}
	return names
}

func copyItems(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp
}
