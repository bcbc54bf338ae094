package dom

import (
	"slices"
	"sync"
)

// Tree is an in-memory Document. Nodes are placed at absolute document
// coordinates and matched by the literal selectors they were registered
// with, e.g. "#about" or `[data-project-id="2"]`.
type Tree struct {
	mu       sync.RWMutex
	nodes    []*Node
	scrollY  float64
	viewport float64
}

// Node is an element of a Tree.
type Node struct {
	tree      *Tree
	selectors []string
	top       float64
	left      float64
	width     float64
	height    float64
}

// NewTree returns an empty tree with the given viewport height.
func NewTree(viewportHeight float64) *Tree {
	return &Tree{viewport: viewportHeight}
}

// Add places a node whose document-relative top edge is top.
func (t *Tree) Add(top, height float64, selectors ...string) *Node {
	n := &Node{tree: t, selectors: selectors, top: top, height: height}
	t.mu.Lock()
	t.nodes = append(t.nodes, n)
	t.mu.Unlock()
	return n
}

// Remove detaches n from the tree.
func (t *Tree) Remove(n *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = slices.DeleteFunc(t.nodes, func(m *Node) bool { return m == n })
}

// Query implements Document.
func (t *Tree) Query(selector string) (Element, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, n := range t.nodes {
		if slices.Contains(n.selectors, selector) {
			return n, true
		}
	}
	return nil, false
}

// ScrollTo sets the scroll offset. Negative offsets are clamped to zero.
func (t *Tree) ScrollTo(y float64) {
	t.mu.Lock()
	t.scrollY = max(y, 0)
	t.mu.Unlock()
}

// SetViewportHeight changes the viewport height, as a window resize would.
func (t *Tree) SetViewportHeight(h float64) {
	t.mu.Lock()
	t.viewport = h
	t.mu.Unlock()
}

// ScrollY implements Document.
func (t *Tree) ScrollY() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollY
}

// ViewportHeight implements Document.
func (t *Tree) ViewportHeight() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewport
}

// Rect implements Element.
func (n *Node) Rect() Rect {
	n.tree.mu.RLock()
	defer n.tree.mu.RUnlock()
	return Rect{
		Top:    n.top - n.tree.scrollY,
		Left:   n.left,
		Width:  n.width,
		Height: n.height,
	}
}

// Move sets the node's document-relative top edge.
func (n *Node) Move(top float64) *Node {
	n.tree.mu.Lock()
	n.top = top
	n.tree.mu.Unlock()
	return n
}

// Resize sets the node's height.
func (n *Node) Resize(height float64) *Node {
	n.tree.mu.Lock()
	n.height = height
	n.tree.mu.Unlock()
	return n
}

// SetWidth sets the node's width and left edge.
func (n *Node) SetWidth(left, width float64) *Node {
	n.tree.mu.Lock()
	n.left, n.width = left, width
	n.tree.mu.Unlock()
	return n
}
