package rbtree

import (
	"fmt"

	"github.com/npillmayer/isotree/tree234"
)

// SourceNode is the read access Build needs for nodes of a 2-3-4 tree.
//
// N is the node type itself, usually a pointer type. Its zero value denotes an
// absent node. Items of a node are expected in ascending order, and ChildCount
// has to return either 0 (for leaves) or ItemCount()+1.
type SourceNode[T any, N any] interface {
	comparable
	ItemCount() int
	ItemAt(i int) T
	ChildCount() int
	ChildAt(i int) N
}

// Build creates a red-black tree isometric to the 2-3-4 tree rooted at src,
// returning its root. An absent src results in an absent (nil) root.
//
// The in-order item sequence of the result equals the in-order item sequence of
// the source tree. If the source tree has uniform leaf depth, the result
// satisfies all red-black invariants. The source tree is never modified.
//
// Malformed source nodes are rejected with an error wrapping
// ErrMalformedSourceNode.
func Build[T any, N SourceNode[T, N]](src N) (*Node[T], error) {
	var absent N
	if src == absent {
		return nil, nil
	}
	return build[T](src, 0)
}

func build[T any, N SourceNode[T, N]](src N, depth int) (*Node[T], error) {
	cnt := src.ItemCount()
	if cnt < 1 || cnt > tree234.MaxItems {
		tracer().Errorf("rbtree: source node at depth %d has %d items", depth, cnt)
		return nil, fmt.Errorf("%w: item count %d at depth %d", ErrMalformedSourceNode, cnt, depth)
	}
	// subtrees for the cluster's child slots, left to right
	var subtrees [tree234.MaxChildren]*Node[T]
	if cc := src.ChildCount(); cc != 0 {
		if cc != cnt+1 {
			tracer().Errorf("rbtree: source node at depth %d has %d items, %d children", depth, cnt, cc)
			return nil, fmt.Errorf("%w: %d children for %d items at depth %d",
				ErrMalformedSourceNode, cc, cnt, depth)
		}
		var absent N
		for i := 0; i < cc; i++ {
			child := src.ChildAt(i)
			if child == absent {
				return nil, fmt.Errorf("%w: absent child %d at depth %d", ErrMalformedSourceNode, i, depth)
			}
			sub, err := build[T](child, depth+1)
			if err != nil {
				return nil, err
			}
			subtrees[i] = sub
		}
	}
	var top *Node[T]
	switch cnt {
	case 1:
		top = newNode(Black, src.ItemAt(0))
		top.left, top.right = subtrees[0], subtrees[1]
	case 2:
		top = newNode(Black, src.ItemAt(0))
		top.right = newNode(Red, src.ItemAt(1))
		top.left = subtrees[0]
		top.right.left, top.right.right = subtrees[1], subtrees[2]
	case 3:
		top = newNode(Black, src.ItemAt(1))
		top.left = newNode(Red, src.ItemAt(0))
		top.right = newNode(Red, src.ItemAt(2))
		top.left.left, top.left.right = subtrees[0], subtrees[1]
		top.right.left, top.right.right = subtrees[2], subtrees[3]
	}
	tracer().Debugf("rbtree: %d-item cluster at depth %d, top=%v", cnt, depth, top)
	return top, nil
}

// Tree is a red-black tree built from a 2-3-4 tree.
//
// A tree created by New is empty. Trees are not modified after construction,
// except by FlipColors on their nodes.
type Tree[T any] struct {
	root *Node[T]
}

// New creates an empty red-black tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// FromTree creates a red-black tree isometric to a 2-3-4 tree. A nil or empty
// source tree results in an empty tree.
func FromTree[T any](src *tree234.Tree[T]) (*Tree[T], error) {
	root, err := Build[T](src.Root())
	if err != nil {
		return nil, err
	}
	t := &Tree[T]{root: root}
	tracer().Infof("rbtree: converted 2-3-4 tree of height %d, black-height is %d",
		src.Height(), t.BlackHeight())
	return t, nil
}

// FromSource creates a red-black tree isometric to the 2-3-4 tree rooted at
// src, for source node types other than tree234.Node.
func FromSource[T any, N SourceNode[T, N]](src N) (*Tree[T], error) {
	root, err := Build[T](src)
	if err != nil {
		return nil, err
	}
	return &Tree[T]{root: root}, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes (and therefore items) of the tree.
func (t *Tree[T]) Len() int {
	n := 0
	t.ForEachItem(func(T) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of nodes on the longest path from the root down
// to an absent child; 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.Root())
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// BlackHeight returns the number of black nodes on the leftmost path from
// the root down to an absent child, not counting the root itself. For a valid
// tree every path has the same count, which equals the height of the source
// 2-3-4 tree minus one.
func (t *Tree[T]) BlackHeight() int {
	if t.IsEmpty() {
		return 0
	}
	bh := 0
	for n := t.root.left; n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}
