package tree234

import "fmt"

// Check validates structural tree invariants: item counts, child counts,
// item order, separator bounds and uniform leaf depth.
//
// This checker is strict and should be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0", ErrInvalidTree)
		}
		return nil
	}
	items, height, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidTree, height, t.height)
	}
	if items != t.count {
		return fmt.Errorf("%w: item count mismatch (%d != %d)", ErrInvalidTree, items, t.count)
	}
	return nil
}

// checkNode checks the subtree at n, where all items have to be strictly
// between lo and hi (nil meaning unbounded).
func (t *Tree[T]) checkNode(n *Node[T], lo, hi *T) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidTree)
	}
	cnt := int(n.n)
	if cnt < 1 || cnt > MaxItems {
		return 0, 0, fmt.Errorf("%w: item count %d out of range", ErrInvalidTree, cnt)
	}
	for i := 0; i < cnt; i++ {
		if i > 0 && t.cmp(n.items[i-1], n.items[i]) >= 0 {
			return 0, 0, fmt.Errorf("%w: items not in ascending order", ErrInvalidTree)
		}
		if lo != nil && t.cmp(*lo, n.items[i]) >= 0 || hi != nil && t.cmp(n.items[i], *hi) >= 0 {
			return 0, 0, fmt.Errorf("%w: item outside of separator bounds", ErrInvalidTree)
		}
	}
	if n.IsLeaf() {
		for i := 1; i < MaxChildren; i++ {
			if n.kids[i] != nil {
				return 0, 0, fmt.Errorf("%w: leaf with dangling child at index %d", ErrInvalidTree, i)
			}
		}
		return cnt, 1, nil
	}
	totalItems := cnt
	var childHeight int
	for i := 0; i <= cnt; i++ {
		child := n.kids[i]
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidTree, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.items[i-1]
		}
		if i < cnt {
			chi = &n.items[i]
		}
		cItems, cHeight, cErr := t.checkNode(child, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidTree)
		}
	}
	for i := cnt + 1; i < MaxChildren; i++ {
		if n.kids[i] != nil {
			return 0, 0, fmt.Errorf("%w: surplus child at index %d", ErrInvalidTree, i)
		}
	}
	return totalItems, childHeight + 1, nil
}
