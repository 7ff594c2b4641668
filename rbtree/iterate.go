package rbtree

import "iter"

// ForEachItem walks items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	stack := []*Node[T]{}
	current := t.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(current.item) {
			return
		}
		current = current.right
	}
}

// Items returns an in-order iterator over the items of the tree.
func (t *Tree[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}
