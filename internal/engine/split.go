package engine

import (
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// split re-architects a leaf that holds items so its unused capacity becomes
// insertable. The items move into a new length layer sized to what they
// occupy; the remaining length (and, for ANY and VERTICAL leaves, the
// remaining height) become empty sibling layers. The leaf itself is emptied
// and either detached from its parent or, for the root, left in place as the
// parent of the new layers.
//
// It returns the leftover length layer, or the leftover height layer when no
// length remains.
func (p *Packer) split(tree *space.Tree, id space.ID) (space.ID, error) {
	n := tree.Node(id)
	if len(n.Items) == 0 {
		return space.None, newPlacementError(CauseEmptySpaceSplit, tree.Summary(id), nil,
			"will not split a space with no items")
	}

	remainingHeight := tree.RemainingHeight(id)
	remainingLength := tree.RemainingLength(id)
	var weight float64
	if n.MaxWeight > 0 {
		weight = tree.RemainingWeight(id)
	}

	p.log.Debug("splitting space", "space", tree.Summary(id),
		"remaining_length", remainingLength, "remaining_height", remainingHeight)

	working := id
	leftover := space.None
	if n.Orientation == model.OrientationAny || n.Orientation == model.OrientationVertical {
		if n.Parent != space.None {
			tree.Detach(id)
			working = n.Parent
		}
		layer := tree.AddChild(working, n.MaxWidth, n.MaxLength, n.Height, weight)
		if remainingHeight > 0 {
			leftover = tree.AddChild(working, n.MaxWidth, n.MaxLength, remainingHeight, weight)
		}
		working = layer
	} else {
		tree.Detach(id)
		working = n.Parent
	}

	height := n.Height
	lengthLayer := tree.AddChild(working, n.MaxWidth, n.Length, height, weight)
	tree.Transplant(id, lengthLayer)

	if remainingLength > 0 {
		leftover = tree.AddChild(working, n.MaxWidth, remainingLength, height, weight)
	}

	if leftover == space.None {
		return space.None, newPlacementError(CauseNoRemainingCapacity, tree.Summary(lengthLayer), nil,
			"no capacity left after splitting")
	}
	return leftover, nil
}
