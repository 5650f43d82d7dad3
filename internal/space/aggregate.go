package space

import (
	"github.com/piwi3910/cubefit/internal/model"
)

// Aggregates are recomputed from the subtree on every call.

// TotalWidth returns the widest extent in the subtree.
func (t *Tree) TotalWidth(id ID) float64 {
	n := t.nodes[id]
	value := n.Width
	for _, c := range n.Children {
		value = max(value, t.TotalWidth(c))
	}
	return value
}

// TotalLength returns the length used by the subtree. Lengths of VERTICAL
// children overlap, so only the longest counts; HORIZONTAL children are laid
// end to end and add up.
func (t *Tree) TotalLength(id ID) float64 {
	n := t.nodes[id]
	value := n.Length
	for _, c := range n.Children {
		sub := t.TotalLength(c)
		if t.nodes[c].Orientation == model.OrientationVertical {
			value = max(value, sub)
		} else {
			value += sub
		}
	}
	return value
}

// TotalHeight returns the height used by the subtree. VERTICAL children are
// stacked layers and add up; HORIZONTAL children sit side by side and only
// the tallest counts. A node with its own occupied height returns it without
// looking at its children.
func (t *Tree) TotalHeight(id ID) float64 {
	n := t.nodes[id]
	value := n.Height
	if value > 0 {
		return value
	}
	for _, c := range n.Children {
		sub := t.TotalHeight(c)
		if sub <= 0 {
			continue
		}
		if t.nodes[c].Orientation == model.OrientationVertical {
			value += sub
		} else {
			value = max(value, sub)
		}
	}
	return value
}

// TotalWeight returns the summed weight of the leaves under id.
func (t *Tree) TotalWeight(id ID) float64 {
	n := t.nodes[id]
	if n.IsLeaf() {
		return n.Weight
	}
	var value float64
	for _, c := range n.Children {
		value += t.TotalWeight(c)
	}
	return value
}

// RemainingLength returns the length ceiling of id less the subtree's used length.
func (t *Tree) RemainingLength(id ID) float64 { return t.nodes[id].MaxLength - t.TotalLength(id) }

// RemainingWidth returns the width ceiling of id less the widest extent below it.
func (t *Tree) RemainingWidth(id ID) float64 { return t.nodes[id].MaxWidth - t.TotalWidth(id) }

// RemainingHeight returns the height ceiling of id less the subtree's used height.
func (t *Tree) RemainingHeight(id ID) float64 { return t.nodes[id].MaxHeight - t.TotalHeight(id) }

// RemainingWeight returns the weight budget of id less the weight of its leaves.
func (t *Tree) RemainingWeight(id ID) float64 { return t.nodes[id].MaxWeight - t.TotalWeight(id) }

// IsFull reports whether the node's own occupied extents reach its ceilings
// on all three axes.
func (t *Tree) IsFull(id ID) bool {
	n := t.nodes[id]
	return n.Length == n.MaxLength && n.Width == n.MaxWidth && n.Height == n.MaxHeight
}

// VolumeUsed returns the summed occupied volume of the leaves under id.
func (t *Tree) VolumeUsed(id ID) float64 {
	n := t.nodes[id]
	if n.IsLeaf() {
		return n.Length * n.Width * n.Height
	}
	var volume float64
	for _, c := range n.Children {
		volume += t.VolumeUsed(c)
	}
	return volume
}

// VolumePercent returns the used volume as a percentage of the node's
// maximum volume, or 0 when the maximum volume is 0.
func (t *Tree) VolumePercent(id ID) float64 {
	n := t.nodes[id]
	maxVolume := n.MaxLength * n.MaxWidth * n.MaxHeight
	if maxVolume <= 0 {
		return 0
	}
	return t.VolumeUsed(id) * 100 / maxVolume
}

// Items collects the items of every leaf under id in tree order.
func (t *Tree) Items(id ID) []model.Item {
	var items []model.Item
	t.Walk(id, func(n *Node, _ int) {
		if n.IsLeaf() {
			items = append(items, n.Items...)
		}
	})
	return items
}

// Spaces counts the attached nodes of the subtree, id included.
func (t *Tree) Spaces(id ID) int {
	count := 0
	t.Walk(id, func(*Node, int) { count++ })
	return count
}

// Leaves returns the IDs of the attached leaves under id.
func (t *Tree) Leaves(id ID) []ID {
	var leaves []ID
	t.Walk(id, func(n *Node, _ int) {
		if n.IsLeaf() {
			leaves = append(leaves, n.ID)
		}
	})
	return leaves
}

// ItemLines returns how many item lines the subtree holds. Units cut from
// one line count once; two lines sharing an ID count twice.
func (t *Tree) ItemLines(id ID) int {
	type line struct {
		id  string
		num int
	}
	seen := make(map[line]bool)
	for _, it := range t.Items(id) {
		seen[line{it.ID, it.Line}] = true
	}
	return len(seen)
}

// Quantities sums the packed quantity per item ID.
func (t *Tree) Quantities(id ID) map[string]int {
	q := make(map[string]int)
	for _, it := range t.Items(id) {
		q[it.ID] += it.Units()
	}
	return q
}
