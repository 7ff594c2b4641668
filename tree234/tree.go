package tree234

import (
	"cmp"
	"fmt"
)

// Tree is a 2-3-4 search tree over items of type T.
//
// A tree created by New or NewFunc is empty. Items are unique with respect to
// the tree's comparison function. The zero value has no comparison function;
// it is a valid empty tree for read access, but Insert panics on it.
type Tree[T any] struct {
	cmp    func(a, b T) int
	root   *Node[T]
	height int // 0 means empty tree
	count  int
}

// New creates an empty tree for an ordered item type.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: cmp.Compare[T]}
}

// NewFunc creates an empty tree ordered by compare, which has to return a
// negative number for a < b, a positive number for a > b and 0 for equal items.
func NewFunc[T any](compare func(a, b T) int) (*Tree[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return &Tree[T]{cmp: compare}, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Insert adds item to the tree. It returns false if an equal item is already
// present, leaving the tree's item set unchanged.
//
// Full nodes are split on the way down, thus the parent of a node to split
// always has room for the middle item.
func (t *Tree[T]) Insert(item T) bool {
	assert(t.cmp != nil, "tree234.Insert: tree has no comparison function, use New or NewFunc")
	if t.root == nil {
		t.root = Leaf(item)
		t.height, t.count = 1, 1
		return true
	}
	if t.root.isFull() {
		left := t.root
		mid, right := left.split()
		t.root = Inner([]T{mid}, left, right)
		t.height++
		tracer().Debugf("tree234: root split, height now %d", t.height)
	}
	node := t.root
	for {
		i, found := t.search(node, item)
		if found {
			return false
		}
		if node.IsLeaf() {
			node.insertItemAt(i, item, nil)
			t.count++
			return true
		}
		child := node.kids[i]
		if child.isFull() {
			mid, right := child.split()
			node.insertItemAt(i, mid, right)
			c := t.cmp(item, mid)
			if c == 0 {
				return false
			} else if c > 0 {
				child = right
			}
		}
		node = child
	}
}

// Contains reports whether an item equal to item is stored in the tree.
func (t *Tree[T]) Contains(item T) bool {
	if t == nil || t.root == nil {
		return false
	}
	node := t.root
	for node != nil {
		i, found := t.search(node, item)
		if found {
			return true
		}
		if node.IsLeaf() {
			return false
		}
		node = node.kids[i]
	}
	return false
}

// search returns the position of item within n, or the index of the child
// to descend into if item is not held by n.
func (t *Tree[T]) search(n *Node[T], item T) (int, bool) {
	for i := 0; i < int(n.n); i++ {
		c := t.cmp(item, n.items[i])
		if c == 0 {
			return i, true
		} else if c < 0 {
			return i, false
		}
	}
	return int(n.n), false
}
