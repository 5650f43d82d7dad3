package space

import (
	"fmt"

	"github.com/piwi3910/cubefit/internal/model"
)

// Summary renders the one-line report of a subtree, for example
//
//	A[0.0,0.0,0.0] spaces=1 cubes=2 l=24.40/300.0, w=62.40/300.0 h=02.50/30.0 volume=00.14%
//
// Nodes do not track their position, so the origin is always zero.
func (t *Tree) Summary(id ID) string {
	n := t.nodes[id]
	return fmt.Sprintf("%s[0.0,0.0,0.0] spaces=%d cubes=%d l=%05.2f/%s, w=%05.2f/%s h=%05.2f/%s volume=%05.2f%%",
		n.Orientation.Letter(),
		t.Spaces(id),
		t.ItemLines(id),
		t.TotalLength(id), model.FormatMeasure(n.MaxLength),
		t.TotalWidth(id), model.FormatMeasure(n.MaxWidth),
		t.TotalHeight(id), model.FormatMeasure(n.MaxHeight),
		t.VolumePercent(id),
	)
}

// String summarises the whole tree.
func (t *Tree) String() string {
	return t.Summary(t.Root())
}
