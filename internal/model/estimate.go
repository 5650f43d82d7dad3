package model

import "math"

// VolumeEstimate holds the results of a container count calculation.
type VolumeEstimate struct {
	TotalItemVolume       float64 `json:"total_item_volume"`       // Volume of all units
	TotalItemWeight       float64 `json:"total_item_weight"`       // Weight of all units
	ContainerVolume       float64 `json:"container_volume"`        // Volume of one container
	ContainersNeededExact float64 `json:"containers_needed_exact"` // Exact fractional number of containers
	ContainersNeededMin   int     `json:"containers_needed_min"`   // Minimum containers (ceiling of exact)
	ContainersByWeight    int     `json:"containers_by_weight"`    // Minimum containers by weight, 0 if unconstrained
	ContainersWithWaste   int     `json:"containers_with_waste"`   // Recommended containers including waste factor
	WastePercent          float64 `json:"waste_percent"`           // Waste factor applied (e.g., 15 for 15%)
}

// EstimateContainers computes a lower bound on how many containers of the
// given limits the items need. It looks at volume and weight only; the packer
// decides whether the items actually fit.
func EstimateContainers(items []Item, limits Limits, wastePercent float64) VolumeEstimate {
	var totalVolume, totalWeight float64
	for _, it := range items {
		totalVolume += it.Dimensions().Volume() * float64(it.Units())
		totalWeight += it.TotalWeight()
	}

	containerVolume := limits.Volume()
	if containerVolume <= 0 {
		return VolumeEstimate{
			TotalItemVolume: totalVolume,
			TotalItemWeight: totalWeight,
			WastePercent:    wastePercent,
		}
	}

	exact := totalVolume / containerVolume
	minContainers := int(math.Ceil(exact))

	byWeight := 0
	if limits.Weight > 0 {
		byWeight = int(math.Ceil(totalWeight / limits.Weight))
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	withWaste = max(withWaste, minContainers, byWeight)

	return VolumeEstimate{
		TotalItemVolume:       totalVolume,
		TotalItemWeight:       totalWeight,
		ContainerVolume:       containerVolume,
		ContainersNeededExact: exact,
		ContainersNeededMin:   minContainers,
		ContainersByWeight:    byWeight,
		ContainersWithWaste:   withWaste,
		WastePercent:          wastePercent,
	}
}
