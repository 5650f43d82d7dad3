package engine

import (
	"math"

	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// CapacityResult is the outcome of a capacity search for one item.
type CapacityResult struct {
	Item     model.Item  // the item with Quantity set to Count
	Estimate int         // floor-division starting point of the search
	Count    int         // largest quantity that packed
	Tree     *space.Tree // packing of Count units, nil when Count is 0
	Attempts int         // number of Pack calls made
}

// Capacity finds how many units of it pack horizontally into a container of
// the given limits. The search starts from the single-layer floor-division
// estimate, capped by the weight budget, and steps up while packs succeed or
// down while they fail. It never goes past Settings.CapacityLimit.
func (p *Packer) Capacity(it model.Item, limits model.Limits) (*CapacityResult, error) {
	if !limits.Valid() {
		return nil, newPlacementError(CauseInvalidConstraint, "", &it,
			"constraint dimensions have not been provided correctly: %s", limits)
	}
	if it.Length <= 0 || it.Width <= 0 || it.Height <= 0 {
		return nil, newPlacementError(CauseInvalidConstraint, "", &it,
			"item dimensions must be positive to count how many fit")
	}

	limit := p.Settings.CapacityLimit
	if limit <= 0 {
		limit = model.DefaultSettings().CapacityLimit
	}

	estimate := int(math.Floor(limits.Width/it.Width)) * int(math.Floor(limits.Length/it.Length))
	if limits.Weight > 0 && it.Weight > 0 {
		estimate = min(estimate, int(math.Floor(limits.Weight/it.Weight)))
	}
	estimate = max(1, min(estimate, limit))

	res := &CapacityResult{Estimate: estimate}
	try := func(n int) (*space.Tree, error) {
		res.Attempts++
		return p.Pack([]model.Item{it.WithQuantity(n)}, limits, model.OrientationHorizontal)
	}

	n := estimate
	tree, err := try(n)
	if err == nil {
		for n < limit {
			next, err := try(n + 1)
			if err != nil {
				break
			}
			n, tree = n+1, next
		}
	} else {
		for tree == nil && n > 1 {
			n--
			tree, err = try(n)
		}
		if tree == nil {
			p.log.Debug("not even one unit fits", "item", it.String(), "error", err)
			res.Item = it.WithQuantity(0)
			return res, nil
		}
	}

	p.log.Debug("capacity found", "item", it.String(), "count", n, "attempts", res.Attempts)
	res.Count = n
	res.Tree = tree
	res.Item = it.WithQuantity(n)
	return res, nil
}
