package engine

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// Packer runs the greedy space-allocation algorithm. A Packer holds no state
// between calls; every Pack builds a fresh tree.
type Packer struct {
	Settings model.PackSettings
	log      *slog.Logger
}

// New creates a packer. A nil logger means slog.Default().
func New(settings model.PackSettings, logger *slog.Logger) *Packer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Packer{Settings: settings, log: logger}
}

// Pack places every unit of items into a single container with the given
// limits. Items are sorted highest first; the caller's slice is not touched.
// Any failure aborts the whole call and no partial tree is returned.
func (p *Packer) Pack(items []model.Item, limits model.Limits, orientation model.Orientation) (*space.Tree, error) {
	if orientation != model.OrientationVertical && orientation != model.OrientationHorizontal {
		return nil, newPlacementError(CauseOrientationUnsupported, "", firstItem(items),
			"%s orientation not yet implemented", orientation)
	}
	if !limits.Valid() {
		return nil, newPlacementError(CauseInvalidConstraint, "", firstItem(items),
			"constraint dimensions have not been provided correctly: %s", limits)
	}

	tree := space.NewTree(limits)
	root := tree.Root()

	for i, it := range model.SortItems(items) {
		it.Line = i + 1
		p.log.Debug("adding item", "space", tree.Summary(root), "item", it.String())

		if limits.Weight > 0 && it.TotalWeight() > tree.RemainingWeight(root) {
			return nil, newPlacementError(CauseWeightExceeded, tree.Summary(root), &it,
				"item weight %s exceeds the remaining weight %s",
				model.FormatMeasure(it.TotalWeight()), model.FormatMeasure(tree.RemainingWeight(root)))
		}

		switch orientation {
		case model.OrientationVertical:
			if err := p.insert(tree, it.ReorientVertical(), root, orientation); err != nil {
				return nil, err
			}
		case model.OrientationHorizontal:
			for range it.Units() {
				unit := it.Unit()
				err := p.insert(tree, unit, root, orientation)
				if err == nil {
					continue
				}
				p.log.Debug("insert failed, splitting root", "error", err)
				if _, splitErr := p.split(tree, root); splitErr != nil {
					p.log.Debug("root split failed", "error", splitErr)
					return nil, err
				}
				if err := p.insert(tree, unit, root, orientation); err != nil {
					return nil, err
				}
			}
		}
	}

	p.log.Debug("packed", "space", tree.Summary(root))
	return tree, nil
}

// insert places it into id or one of its descendants. Children are tried in
// creation order. When the last child rejects the item it is split and the
// item goes into the space the split opened up.
func (p *Packer) insert(tree *space.Tree, it model.Item, id space.ID, orientation model.Orientation) error {
	n := tree.Node(id)
	if n.IsLeaf() {
		return p.insertLeaf(tree, it, id, orientation)
	}

	// Splits below may rewrite n.Children, so walk a copy.
	children := slices.Clone(n.Children)
	for i, child := range children {
		err := p.insertChild(tree, it, child, orientation)
		if err == nil {
			return nil
		}
		if i < len(children)-1 {
			continue
		}

		p.log.Debug("last space rejected item", "error", err)
		err = p.splitAndInsert(tree, it, child, orientation)
		if err == nil {
			return nil
		}
		if tree.HasChild(id, child) {
			return err
		}
		// The child was split away while we were inserting into it.
		last := tree.LastChild(id)
		if last == space.None {
			return err
		}
		return p.insert(tree, it, last, orientation)
	}
	return nil
}

func (p *Packer) insertChild(tree *space.Tree, it model.Item, child space.ID, orientation model.Orientation) error {
	if tree.IsFull(child) {
		return newPlacementError(CauseNoRemainingCapacity, tree.Summary(child), &it,
			"this space is full, try another one")
	}
	return p.insert(tree, it, child, orientation)
}

func (p *Packer) splitAndInsert(tree *space.Tree, it model.Item, child space.ID, orientation model.Orientation) error {
	next, err := p.split(tree, child)
	if err != nil {
		return withItem(err, it)
	}
	return p.insert(tree, it, next, orientation)
}

// withItem records it on a placement error raised before the item was known.
func withItem(err error, it model.Item) error {
	var pe *PlacementError
	if errors.As(err, &pe) && pe.Item == nil {
		pe.Item = &it
	}
	return err
}

func firstItem(items []model.Item) *model.Item {
	if len(items) == 0 {
		return nil
	}
	it := items[0]
	return &it
}

// insertLeaf applies the placement rules of the given orientation to a leaf.
// A rejected item leaves the leaf unchanged.
func (p *Packer) insertLeaf(tree *space.Tree, it model.Item, id space.ID, orientation model.Orientation) error {
	switch orientation {
	case model.OrientationVertical:
		return p.insertVertical(tree, it, id)
	case model.OrientationHorizontal:
		return p.insertHorizontal(tree, it, id)
	case model.OrientationAny:
		n := tree.Node(id)
		if it.LongestSide() > n.MaxLength && it.LongestSide() > n.MaxWidth {
			return newPlacementError(CauseNoRemainingCapacity, tree.Summary(id), &it,
				"invalid item exceeds constraints, will never fit")
		}
	}
	return newPlacementError(CauseOrientationUnsupported, tree.Summary(id), &it,
		"%s orientation not yet implemented", orientation)
}

// insertVertical stands items side by side along the width. The first item
// seeds the leaf; later items raise its height and length before their width
// is checked, so a rejected item still leaves the leaf taller and longer.
func (p *Packer) insertVertical(tree *space.Tree, it model.Item, id space.ID) error {
	n := tree.Node(id)
	if it.Length > n.MaxLength {
		return newPlacementError(CauseLengthExceeded, tree.Summary(id), &it, "item exceeds length constraints")
	}
	if it.Width > n.MaxWidth {
		return newPlacementError(CauseWidthExceeded, tree.Summary(id), &it, "item exceeds width constraints")
	}
	if it.Height > n.MaxHeight {
		return newPlacementError(CauseHeightExceeded, tree.Summary(id), &it, "item exceeds height constraints")
	}

	if !n.Initialised {
		n.Length = it.Length
		n.Width = it.Width
		n.Height = it.Height
		n.Weight = it.TotalWeight()
		n.Initialised = true
		n.Items = append(n.Items, it)
		return nil
	}

	n.Height = max(n.Height, it.Height)
	n.Length = max(n.Length, it.Length)
	width := it.Width * float64(it.Units())
	if width > tree.RemainingWidth(id) {
		return newPlacementError(CauseWidthExceeded, tree.Summary(id), &it,
			"item exceeds width constraints, no more space available")
	}
	n.Width += width
	n.Weight += it.TotalWeight()
	n.Items = append(n.Items, it)
	return nil
}

// insertHorizontal lays one unit flat next to the leaf's existing items. A
// taller unit lifts the height ceiling of its parent's subtree and a unit
// that fits the width takes it before its length is checked; neither is
// undone when the unit is then rejected.
func (p *Packer) insertHorizontal(tree *space.Tree, it model.Item, id space.ID) error {
	n := tree.Node(id)

	if it.Length > tree.RemainingLength(id) && it.Width > tree.RemainingWidth(id) {
		return newPlacementError(CauseWidthExceeded, tree.Summary(id), &it,
			"item exceeds width and length constraints, no more space available")
	}

	if it.Height > n.MaxHeight {
		if tree.RemainingHeight(n.Root) < it.Height {
			return newPlacementError(CauseHeightExceeded, tree.Summary(id), &it, "item exceeds height constraints")
		}
		if n.Parent != space.None {
			tree.RaiseMaxHeight(n.Parent, it.Height)
		}
	}

	if it.Width > tree.RemainingWidth(id) {
		return newPlacementError(CauseWidthExceeded, tree.Summary(id), &it,
			"item exceeds width constraints, no more space available, need to go deeper")
	}
	n.Width += it.Width
	if it.Length > n.Length {
		if it.Length > tree.RemainingLength(id) {
			return newPlacementError(CauseLengthExceeded, tree.Summary(id), &it,
				"item exceeds length constraints, no more space available, need to go up")
		}
		n.Length = it.Length
	}
	n.Height = max(n.Height, it.Height)
	n.Weight += it.Weight
	n.Items = append(n.Items, it)
	return nil
}
