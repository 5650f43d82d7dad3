package engine

import (
	"fmt"

	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// ComparisonResult holds the packing outcome and statistics for one
// candidate container.
type ComparisonResult struct {
	Container     model.Container
	Tree          *space.Tree
	Err           error
	Fits          bool
	VolumePercent float64
	Spaces        int
	Summary       string
}

// CompareContainers packs the same items into every candidate, in the
// candidates' packing order, so they can be compared side by side. Unlike
// SelectContainer it does not stop at the first fit.
func (p *Packer) CompareContainers(candidates []model.Container, items []model.Item) []ComparisonResult {
	sorted := model.SortContainers(candidates)
	results := make([]ComparisonResult, 0, len(sorted))

	for _, c := range sorted {
		tree, err := p.Pack(items, c.Limits(), p.Settings.Orientation)
		if err != nil {
			results = append(results, ComparisonResult{
				Container: c,
				Err:       err,
				Summary:   err.Error(),
			})
			continue
		}

		root := tree.Root()
		results = append(results, ComparisonResult{
			Container:     c,
			Tree:          tree,
			Fits:          true,
			VolumePercent: tree.VolumePercent(root),
			Spaces:        tree.Spaces(root),
			Summary:       tree.Summary(root),
		})
	}

	return results
}

// BestFit returns the fitting result with the highest volume usage, or nil
// when nothing fits. Ties go to the earlier result.
func BestFit(results []ComparisonResult) *ComparisonResult {
	var best *ComparisonResult
	for i := range results {
		r := &results[i]
		if !r.Fits {
			continue
		}
		if best == nil || r.VolumePercent > best.VolumePercent {
			best = r
		}
	}
	return best
}

// BuildOrientationScenarios returns the settings to compare the same
// container under each supported orientation.
func BuildOrientationScenarios(base model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}
	for _, o := range []model.Orientation{model.OrientationHorizontal, model.OrientationVertical} {
		if o == base.Orientation {
			continue
		}
		alt := base
		alt.Orientation = o
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("%s orientation", o),
			Settings: alt,
		})
	}
	return scenarios
}

// ComparisonScenario names a set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ScenarioResult is the outcome of one scenario against one container.
type ScenarioResult struct {
	Scenario ComparisonScenario
	ComparisonResult
}

// CompareScenarios packs items into container once per scenario.
func (p *Packer) CompareScenarios(scenarios []ComparisonScenario, items []model.Item, container model.Container) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		alt := New(sc.Settings, p.log)
		r := alt.CompareContainers([]model.Container{container}, items)
		results = append(results, ScenarioResult{Scenario: sc, ComparisonResult: r[0]})
	}
	return results
}
