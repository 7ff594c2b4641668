package tree234

import "iter"

// ForEachItem walks items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachItemNode(t.root, fn)
}

// Items returns an in-order iterator over the items of the tree.
func (t *Tree[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

func forEachItemNode[T any](n *Node[T], fn func(item T) bool) bool {
	assert(n != nil, "forEachItemNode called with nil node")
	leaf := n.IsLeaf()
	for i := 0; i < int(n.n); i++ {
		if !leaf && !forEachItemNode(n.kids[i], fn) {
			return false
		}
		if !fn(n.items[i]) {
			return false
		}
	}
	if !leaf {
		return forEachItemNode(n.kids[n.n], fn)
	}
	return true
}
