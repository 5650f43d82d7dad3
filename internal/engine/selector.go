package engine

import (
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// Slot is the container chosen for an item set and the tree packed into it.
type Slot struct {
	Container model.Container
	Tree      *space.Tree
	Rejected  []CandidateFailure
}

// SelectContainer packs items into each candidate in packing order and
// returns the first that holds them all. Rejected candidates are logged and
// kept on the result; if every candidate fails a *SelectionError is returned.
func (p *Packer) SelectContainer(candidates []model.Container, items []model.Item) (*Slot, error) {
	var failures []CandidateFailure
	for _, c := range model.SortContainers(candidates) {
		tree, err := p.Pack(items, c.Limits(), p.Settings.Orientation)
		if err != nil {
			p.log.Warn("candidate rejected", "container", c.String(), "error", err)
			failures = append(failures, CandidateFailure{Container: c, Err: err})
			continue
		}
		p.log.Debug("candidate accepted", "container", c.String(), "space", tree.String())
		return &Slot{Container: c, Tree: tree, Rejected: failures}, nil
	}
	return nil, &SelectionError{Failures: failures}
}
