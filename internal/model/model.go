package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Orientation selects how items are laid into a space. It is also the tag a
// space node carries, derived from its depth in the tree.
type Orientation int

const (
	OrientationAny        Orientation = iota // Free placement, not supported
	OrientationVertical                      // Items stand on end, side by side along the width
	OrientationHorizontal                    // Items lie flat, one unit at a time
)

func (o Orientation) String() string {
	switch o {
	case OrientationAny:
		return "ANY"
	case OrientationVertical:
		return "VERTICAL"
	case OrientationHorizontal:
		return "HORIZONTAL"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Letter returns the single upper-case letter used in space summaries.
func (o Orientation) Letter() string {
	return o.String()[:1]
}

// Valid reports whether o is one of the three known orientations.
func (o Orientation) Valid() bool {
	return o >= OrientationAny && o <= OrientationHorizontal
}

// ParseOrientation accepts the orientation name (any case) or its integer
// value 0, 1 or 2.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "a", "0":
		return OrientationAny, nil
	case "vertical", "v", "1":
		return OrientationVertical, nil
	case "horizontal", "h", "2", "":
		return OrientationHorizontal, nil
	}
	return OrientationHorizontal, fmt.Errorf("no orientation exists with value %q", s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(o.String())), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Dimensions is the length x width x height of a rectangular prism.
// A zero value on an axis means the axis is unconstrained.
type Dimensions struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// LongestSide returns the largest of the three dimensions.
func (d Dimensions) LongestSide() float64 {
	return max(d.Length, d.Width, d.Height)
}

// ShortestSide returns the smallest of the three dimensions.
func (d Dimensions) ShortestSide() float64 {
	return min(d.Length, d.Width, d.Height)
}

// SecondLongestSide returns the median dimension.
func (d Dimensions) SecondLongestSide() float64 {
	maxLW := max(d.Length, d.Width)
	if maxLW == d.LongestSide() {
		return max(min(d.Length, d.Width), d.Height)
	}
	return maxLW
}

// Volume returns length * width * height.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// CompareForPacking orders prisms for insertion: highest first, then by
// longest, second longest and shortest side, each descending. It returns a
// negative number when a goes before b and 0 when they are interchangeable.
func CompareForPacking(a, b Dimensions) int {
	if c := compareDesc(a.Height, b.Height); c != 0 {
		return c
	}
	if c := compareDesc(a.LongestSide(), b.LongestSide()); c != 0 {
		return c
	}
	if c := compareDesc(a.SecondLongestSide(), b.SecondLongestSide()); c != 0 {
		return c
	}
	return compareDesc(a.ShortestSide(), b.ShortestSide())
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// Item is one line of payload: a rectangular prism with a weight and a
// quantity of identical units.
type Item struct {
	ID       string  `json:"id" yaml:"id"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Length   float64 `json:"length" yaml:"length"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Quantity int     `json:"quantity" yaml:"quantity"`

	// Line numbers the item line a unit was cut from during a pack. Units
	// of one line share it; 0 means the item was not packed as a line.
	Line int `json:"-" yaml:"-"`
}

// NewItem creates an item with quantity 1. An empty id gets a generated one.
func NewItem(id string, length, width, height, weight float64) Item {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	return Item{
		ID:       id,
		Weight:   weight,
		Length:   length,
		Width:    width,
		Height:   height,
		Quantity: 1,
	}
}

// WithQuantity returns a copy of the item with the given quantity.
func (it Item) WithQuantity(qty int) Item {
	it.Quantity = qty
	return it
}

// Dimensions returns the item's length, width and height.
func (it Item) Dimensions() Dimensions {
	return Dimensions{Length: it.Length, Width: it.Width, Height: it.Height}
}

func (it Item) LongestSide() float64       { return it.Dimensions().LongestSide() }
func (it Item) ShortestSide() float64      { return it.Dimensions().ShortestSide() }
func (it Item) SecondLongestSide() float64 { return it.Dimensions().SecondLongestSide() }

// Units returns the quantity, treating anything below 1 as a single unit.
func (it Item) Units() int {
	if it.Quantity < 1 {
		return 1
	}
	return it.Quantity
}

// TotalWeight returns the weight of all units of the item.
func (it Item) TotalWeight() float64 {
	return it.Weight * float64(it.Units())
}

// ReorientVertical returns a new item stood on end: the old width becomes the
// length, the old height becomes the width and the old length becomes the
// height. Weight and quantity are kept.
func (it Item) ReorientVertical() Item {
	return Item{
		ID:       it.ID,
		Weight:   it.Weight,
		Length:   it.Width,
		Width:    it.Height,
		Height:   it.Length,
		Quantity: it.Quantity,
		Line:     it.Line,
	}
}

// Unit returns a single-unit copy of the item.
func (it Item) Unit() Item {
	return it.WithQuantity(1)
}

func (it Item) String() string {
	return fmt.Sprintf("Item[%s]=(%s,%s,%s) qty=%d",
		it.ID, FormatMeasure(it.Length), FormatMeasure(it.Width), FormatMeasure(it.Height), it.Quantity)
}

// SortItems returns a copy of items in packing order. Items that compare
// equal keep their input order.
func SortItems(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareForPacking(sorted[i].Dimensions(), sorted[j].Dimensions()) < 0
	})
	return sorted
}

// FormatMeasure renders a float the way measurements appear in summaries:
// the shortest exact form, always with a fractional part (300 -> "300.0").
func FormatMeasure(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
