// Package space models a container as a tree of sub-spaces. Nodes live in an
// arena owned by the Tree and refer to each other by ID, so parent and root
// links never form ownership cycles.
package space

import (
	"github.com/piwi3910/cubefit/internal/model"
)

// ID addresses a node in a Tree's arena. IDs are stable for the life of the
// tree; nodes are never removed from the arena, only detached from parents.
type ID int

// None marks a missing node, such as the parent of the root.
const None ID = -1

// Node is one rectangular region of a container. Length, Width, Height and
// Weight are the occupied extents; the Max fields are the region's ceilings.
// A node owns Items while it is a leaf and Children once it has been split.
type Node struct {
	ID          ID
	Orientation model.Orientation // fixed by depth at construction
	Parent      ID
	Root        ID

	Length float64
	Width  float64
	Height float64
	Weight float64

	MaxLength float64
	MaxWidth  float64
	MaxHeight float64
	MaxWeight float64 // 0 = unconstrained

	Initialised bool
	Items       []model.Item
	Children    []ID
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is a container decomposition. The root is always ID 0.
type Tree struct {
	nodes []*Node
}

// NewTree creates a tree whose root carries the given limits.
func NewTree(limits model.Limits) *Tree {
	root := &Node{
		ID:          0,
		Orientation: model.OrientationAny,
		Parent:      None,
		Root:        0,
		MaxLength:   limits.Length,
		MaxWidth:    limits.Width,
		MaxHeight:   limits.Height,
		MaxWeight:   limits.Weight,
	}
	return &Tree{nodes: []*Node{root}}
}

// Root returns the ID of the root node.
func (t *Tree) Root() ID {
	return 0
}

// Node returns the node with the given ID, or nil if it does not exist.
func (t *Tree) Node(id ID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Arena returns the number of nodes ever created, detached ones included.
func (t *Tree) Arena() int {
	return len(t.nodes)
}

// AddChild appends a new empty node under parent and returns its ID. The
// child's orientation follows from its depth: children of the root are
// VERTICAL, everything deeper is HORIZONTAL.
func (t *Tree) AddChild(parent ID, maxWidth, maxLength, maxHeight, maxWeight float64) ID {
	p := t.nodes[parent]
	o := model.OrientationHorizontal
	if parent == p.Root {
		o = model.OrientationVertical
	}
	id := ID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		ID:          id,
		Orientation: o,
		Parent:      parent,
		Root:        p.Root,
		MaxLength:   maxLength,
		MaxWidth:    maxWidth,
		MaxHeight:   maxHeight,
		MaxWeight:   maxWeight,
	})
	p.Children = append(p.Children, id)
	return id
}

// Detach removes id from its parent's child list. The node keeps its parent
// link but is no longer reachable from the root. It returns false for the
// root or a node that is already detached.
func (t *Tree) Detach(id ID) bool {
	n := t.nodes[id]
	if n.Parent == None {
		return false
	}
	p := t.nodes[n.Parent]
	for i, c := range p.Children {
		if c == id {
			p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
			return true
		}
	}
	return false
}

// HasChild reports whether child is currently in parent's child list.
func (t *Tree) HasChild(parent, child ID) bool {
	for _, c := range t.nodes[parent].Children {
		if c == child {
			return true
		}
	}
	return false
}

// LastChild returns the most recently added child still attached to parent,
// or None.
func (t *Tree) LastChild(parent ID) ID {
	children := t.nodes[parent].Children
	if len(children) == 0 {
		return None
	}
	return children[len(children)-1]
}

// RaiseMaxHeight lifts the height ceiling of id and all its descendants to
// at least h. Ceilings are never lowered.
func (t *Tree) RaiseMaxHeight(id ID, h float64) {
	n := t.nodes[id]
	if h > n.MaxHeight {
		n.MaxHeight = h
	}
	for _, c := range n.Children {
		t.RaiseMaxHeight(c, h)
	}
}

// Transplant moves the occupied extents and items of from into to, marks to
// as initialised and leaves from empty.
func (t *Tree) Transplant(from, to ID) {
	src, dst := t.nodes[from], t.nodes[to]
	dst.Length = src.Length
	dst.Width = src.Width
	dst.Height = src.Height
	dst.Weight = src.Weight
	dst.Items = src.Items
	dst.Initialised = true
	t.Reset(from)
}

// Reset clears the occupied extents and items of id.
func (t *Tree) Reset(id ID) {
	n := t.nodes[id]
	n.Length = 0
	n.Width = 0
	n.Height = 0
	n.Weight = 0
	n.Items = nil
}

// Walk visits id and every attached descendant depth first, in child order.
func (t *Tree) Walk(id ID, fn func(n *Node, depth int)) {
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id ID, depth int, fn func(n *Node, depth int)) {
	n := t.nodes[id]
	fn(n, depth)
	for _, c := range n.Children {
		t.walk(c, depth+1, fn)
	}
}
