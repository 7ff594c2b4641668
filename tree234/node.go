package tree234

const (
	// MaxItems is the maximum number of items a node holds.
	MaxItems = 3
	// MaxChildren is the maximum number of children of an internal node.
	MaxChildren = MaxItems + 1
)

// Node is a node of a 2-3-4 tree.
//
// A node holds 1 to 3 items in ascending order. A leaf has no children, an
// internal node has exactly ItemCount()+1 children. Child i holds items
// between items i-1 and i.
type Node[T any] struct {
	// n is the logical item count; valid items are items[:n].
	n uint8
	// items is the fixed backing storage for node items.
	items [MaxItems]T
	// kids is empty for leaves and holds n+1 children otherwise.
	kids [MaxChildren]*Node[T]
}

// Leaf creates a leaf node from 1 to 3 items. Items must be in ascending order.
func Leaf[T any](items ...T) *Node[T] {
	assert(len(items) > 0 && len(items) <= MaxItems, "tree234.Leaf: item count out of range")
	node := &Node[T]{n: uint8(len(items))}
	copy(node.items[:], items)
	return node
}

// Inner creates an internal node from 1 to 3 items and len(items)+1 children.
func Inner[T any](items []T, children ...*Node[T]) *Node[T] {
	assert(len(items) > 0 && len(items) <= MaxItems, "tree234.Inner: item count out of range")
	assert(len(children) == len(items)+1, "tree234.Inner: child count must be item count + 1")
	node := &Node[T]{n: uint8(len(items))}
	copy(node.items[:], items)
	for i, child := range children {
		assert(child != nil, "tree234.Inner: child may not be nil")
		node.kids[i] = child
	}
	return node
}

// ItemCount returns the number of items held by n.
func (n *Node[T]) ItemCount() int {
	if n == nil {
		return 0
	}
	return int(n.n)
}

// ItemAt returns item i of n. It panics if i is out of range.
func (n *Node[T]) ItemAt(i int) T {
	assert(i >= 0 && i < n.ItemCount(), "tree234.ItemAt: index out of range")
	return n.items[i]
}

// ChildCount returns 0 for leaves and ItemCount()+1 for internal nodes.
func (n *Node[T]) ChildCount() int {
	if n.IsLeaf() {
		return 0
	}
	return int(n.n) + 1
}

// ChildAt returns child i of n. It panics if i is out of range.
func (n *Node[T]) ChildAt(i int) *Node[T] {
	assert(i >= 0 && i < n.ChildCount(), "tree234.ChildAt: index out of range")
	return n.kids[i]
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n == nil || n.kids[0] == nil
}

func (n *Node[T]) isFull() bool {
	return n.n == MaxItems
}

// insertItemAt shifts items and children right of position i and puts item
// into slot i. right becomes the child right of the new item.
func (n *Node[T]) insertItemAt(i int, item T, right *Node[T]) {
	assert(!n.isFull(), "insertItemAt called on full node")
	cnt := int(n.n)
	copy(n.items[i+1:cnt+1], n.items[i:cnt])
	n.items[i] = item
	if !n.IsLeaf() {
		copy(n.kids[i+2:cnt+2], n.kids[i+1:cnt+1])
		n.kids[i+1] = right
	}
	n.n++
}

// split divides a full node into two 2-nodes and returns the middle item
// together with the new right sibling. n keeps the left item.
func (n *Node[T]) split() (T, *Node[T]) {
	assert(n.isFull(), "split called on non-full node")
	var zero T
	mid := n.items[1]
	right := &Node[T]{n: 1}
	right.items[0] = n.items[2]
	right.kids[0], right.kids[1] = n.kids[2], n.kids[3]
	n.items[1], n.items[2] = zero, zero
	n.kids[2], n.kids[3] = nil, nil
	n.n = 1
	return mid, right
}
