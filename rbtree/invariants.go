package rbtree

import "fmt"

// Check validates the red-black invariants of the tree:
//
//  1. the root is black,
//  2. red nodes do not have red children,
//  3. all paths from the root to an absent child have the same number of black nodes.
//
// An empty tree is valid.
func (t *Tree[T]) Check() error {
	if t.IsEmpty() {
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %v is not black", ErrInvalidTree, t.root)
	}
	_, err := checkSubtree(t.root)
	return err
}

// checkSubtree returns the number of black nodes on every path from n down to
// an absent child, including n.
func checkSubtree[T any](n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.color == Red && (IsRed(n.left) || IsRed(n.right)) {
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvalidTree, n)
	}
	lcount, err := checkSubtree(n.left)
	if err != nil {
		return 0, err
	}
	rcount, err := checkSubtree(n.right)
	if err != nil {
		return 0, err
	}
	if lcount != rcount {
		return 0, fmt.Errorf("%w: black-height mismatch below %v (%d != %d)",
			ErrInvalidTree, n, lcount, rcount)
	}
	if n.color == Black {
		lcount++
	}
	return lcount, nil
}

// CheckOrder validates that the in-order item sequence of the tree is
// strictly ascending with respect to compare.
func (t *Tree[T]) CheckOrder(compare func(a, b T) int) error {
	if compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidTree)
	}
	var prev T
	first, err := true, error(nil)
	t.ForEachItem(func(item T) bool {
		if !first && compare(prev, item) >= 0 {
			err = fmt.Errorf("%w: item %v out of order after %v", ErrInvalidTree, item, prev)
			return false
		}
		prev, first = item, false
		return true
	})
	return err
}
