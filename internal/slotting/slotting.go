// Package slotting finds the container a product should be stored in.
package slotting

import (
	"fmt"
	"log/slog"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/model"
)

// DimensionSource looks up the recorded dimensions of a product.
type DimensionSource interface {
	ProductDimensions(productID string) (model.Product, error)
}

// ContainerSource lists the containers available in the given zones.
type ContainerSource interface {
	CandidateContainers(zones []string) ([]model.Container, error)
}

// Slotter ties product lookups to the packing engine.
type Slotter struct {
	dims       DimensionSource
	containers ContainerSource
	packer     *engine.Packer
	log        *slog.Logger
}

func New(dims DimensionSource, containers ContainerSource, packer *engine.Packer, logger *slog.Logger) *Slotter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slotter{dims: dims, containers: containers, packer: packer, log: logger}
}

// Result describes where a product was slotted.
type Result struct {
	Product   model.Product
	Item      model.Item
	Container model.Container
	Summary   string
	Rejected  []engine.CandidateFailure
}

// FindProductSlot picks the first container in zones that holds quantity
// units of the product.
func (s *Slotter) FindProductSlot(productID string, quantity int, zones []string) (*Result, error) {
	s.log.Info("slotting product", "product", productID, "quantity", quantity, "zones", zones)

	product, err := s.dims.ProductDimensions(productID)
	if err != nil {
		return nil, fmt.Errorf("looking up product %s: %w", productID, err)
	}

	candidates, err := s.containers.CandidateContainers(zones)
	if err != nil {
		return nil, fmt.Errorf("listing containers for product %s: %w", productID, err)
	}

	item := ItemFor(product, quantity)
	slot, err := s.packer.SelectContainer(candidates, []model.Item{item})
	if err != nil {
		return nil, fmt.Errorf("product [%s] title=%q qty=%d does not fit into any available container: %w",
			product.ID, product.Title, quantity, err)
	}

	s.log.Info("found container", "product", productID, "container", slot.Container.String())
	return &Result{
		Product:   product,
		Item:      item,
		Container: slot.Container,
		Summary:   slot.Tree.String(),
		Rejected:  slot.Rejected,
	}, nil
}

// ItemFor builds the item to pack for a product. The shorter of the product's
// length and width always becomes the item length.
func ItemFor(p model.Product, quantity int) model.Item {
	length, width := p.Length, p.Width
	if length > width {
		length, width = width, length
	}
	return model.Item{
		ID:       p.ID,
		Weight:   p.Weight,
		Length:   length,
		Width:    width,
		Height:   p.Height,
		Quantity: quantity,
	}
}
