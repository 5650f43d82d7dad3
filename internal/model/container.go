package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Limits are the ceilings of a single container. Length, width and height
// must be positive; a zero weight means the weight is not constrained.
type Limits struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Valid reports whether all three spatial limits are positive.
func (l Limits) Valid() bool {
	return l.Length > 0 && l.Width > 0 && l.Height > 0
}

// Volume returns the container volume.
func (l Limits) Volume() float64 {
	return l.Length * l.Width * l.Height
}

func (l Limits) String() string {
	return fmt.Sprintf("%sx%sx%s wt=%s",
		FormatMeasure(l.Length), FormatMeasure(l.Width), FormatMeasure(l.Height), FormatMeasure(l.Weight))
}

// Container is a candidate bin the selector may pack into.
type Container struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label" yaml:"label"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"` // 0 = unconstrained
}

func NewContainer(label string, length, width, height, weight float64) Container {
	return Container{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Length: length,
		Width:  width,
		Height: height,
		Weight: weight,
	}
}

// Limits returns the packing limits of the container.
func (c Container) Limits() Limits {
	return Limits{Length: c.Length, Width: c.Width, Height: c.Height, Weight: c.Weight}
}

// Dimensions returns the container's length, width and height.
func (c Container) Dimensions() Dimensions {
	return Dimensions{Length: c.Length, Width: c.Width, Height: c.Height}
}

func (c Container) String() string {
	name := c.Label
	if name == "" {
		name = c.ID
	}
	return fmt.Sprintf("Container[%s]=(%s)", name, c.Limits())
}

// SortContainers returns a copy of the candidates in the same order items are
// packed in, keeping the input order for equal candidates.
func SortContainers(containers []Container) []Container {
	sorted := make([]Container, len(containers))
	copy(sorted, containers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareForPacking(sorted[i].Dimensions(), sorted[j].Dimensions()) < 0
	})
	return sorted
}
