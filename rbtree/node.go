package rbtree

import "fmt"

// Color is the color of a red-black node.
type Color uint8

// Absent nodes are black, which is the zero value for colors.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a node of a red-black tree.
//
// The item of a node is set at construction time and never changes. Children
// are owned exclusively by their parent; nodes do not link back to parents.
type Node[T any] struct {
	item        T
	color       Color
	left, right *Node[T]
}

func newNode[T any](color Color, item T) *Node[T] {
	return &Node[T]{color: color, item: item}
}

// Item returns the item stored in n.
func (n *Node[T]) Item() T {
	return n.item
}

// Color returns the color of n. An absent node is black.
func (n *Node[T]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// IsBlack reports whether n is black. An absent node is black.
func (n *Node[T]) IsBlack() bool {
	return n.Color() == Black
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node[T]) String() string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("%v(%s)", n.item, n.color)
}

// IsRed reports whether node is present and red. Absent nodes are black.
func IsRed[T any](node *Node[T]) bool {
	return node != nil && node.color == Red
}

// FlipColors inverts the colors of node and of both its children.
//
// node must have a left and a right child. If it has not, FlipColors returns an
// error wrapping ErrPreconditionViolated and leaves all colors unchanged.
func FlipColors[T any](node *Node[T]) error {
	if node == nil {
		return fmt.Errorf("%w: cannot flip colors of absent node", ErrPreconditionViolated)
	}
	if node.left == nil || node.right == nil {
		return fmt.Errorf("%w: flip colors of %v requires two children", ErrPreconditionViolated, node)
	}
	node.color = node.color.flipped()
	node.left.color = node.left.color.flipped()
	node.right.color = node.right.color.flipped()
	return nil
}

func (c Color) flipped() Color {
	if c == Red {
		return Black
	}
	return Red
}
