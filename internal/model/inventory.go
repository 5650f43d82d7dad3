package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ContainerPreset is a reusable container definition kept in the inventory.
type ContainerPreset struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Zone   string  `json:"zone" yaml:"zone"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name, zone string, length, width, height, weight float64) ContainerPreset {
	return ContainerPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Zone:   zone,
		Length: length,
		Width:  width,
		Height: height,
		Weight: weight,
	}
}

// ToContainer converts a preset into a packing candidate.
func (cp ContainerPreset) ToContainer() Container {
	return Container{
		ID:     cp.ID,
		Label:  cp.Name,
		Length: cp.Length,
		Width:  cp.Width,
		Height: cp.Height,
		Weight: cp.Weight,
	}
}

// Product holds the physical dimensions recorded for a product id.
type Product struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Inventory holds the container presets and product dimensions known locally.
type Inventory struct {
	Containers []ContainerPreset `json:"containers" yaml:"containers"`
	Products   []Product         `json:"products" yaml:"products"`
}

// DefaultInventory returns an inventory populated with common shelf bins and
// shipping cartons (cm / kg).
func DefaultInventory() Inventory {
	return Inventory{
		Containers: []ContainerPreset{
			NewContainerPreset("Shelf bin small 25x25x3.5", "picking", 25, 25, 3.5, 7),
			NewContainerPreset("Shelf bin medium 40x30x10", "picking", 40, 30, 10, 15),
			NewContainerPreset("Shelf bin large 60x40x30", "picking", 60, 40, 30, 25),
			NewContainerPreset("Carton 30x22x15", "shipping", 30, 22, 15, 10),
			NewContainerPreset("Carton 45x35x30", "shipping", 45, 35, 30, 20),
			NewContainerPreset("Pallet bay 300x300x30", "bulk", 300, 300, 30, 0),
		},
		Products: []Product{},
	}
}

// FindContainerByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindContainerByID(id string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindContainerByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindContainerByName(name string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].Name == name {
			return &inv.Containers[i]
		}
	}
	return nil
}

// ContainerNames returns the preset names in inventory order.
func (inv *Inventory) ContainerNames() []string {
	names := make([]string, len(inv.Containers))
	for i, c := range inv.Containers {
		names[i] = c.Name
	}
	return names
}

// FindProduct returns a pointer to the product with the given ID, or nil.
func (inv *Inventory) FindProduct(id string) *Product {
	for i := range inv.Products {
		if inv.Products[i].ID == id {
			return &inv.Products[i]
		}
	}
	return nil
}

// ProductDimensions implements the slotting dimension source.
func (inv *Inventory) ProductDimensions(productID string) (Product, error) {
	p := inv.FindProduct(productID)
	if p == nil {
		return Product{}, fmt.Errorf("cannot find product dimensions for product %q", productID)
	}
	return *p, nil
}

// CandidateContainers implements the slotting container source. An empty
// zone list returns every preset.
func (inv *Inventory) CandidateContainers(zones []string) ([]Container, error) {
	wanted := make(map[string]bool, len(zones))
	for _, z := range zones {
		wanted[z] = true
	}
	var out []Container
	for _, cp := range inv.Containers {
		if len(wanted) > 0 && !wanted[cp.Zone] {
			continue
		}
		out = append(out, cp.ToContainer())
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("there are no available containers for zones %v", zones)
	}
	return out, nil
}

// AllContainers returns all presets as packing candidates.
func (inv *Inventory) AllContainers() []Container {
	out := make([]Container, len(inv.Containers))
	for i, cp := range inv.Containers {
		out[i] = cp.ToContainer()
	}
	return out
}
