package rbtree

import "errors"

var (
	// ErrMalformedSourceNode signals a source node with an item count outside
	// of 1…3 or with a child count other than 0 or item count + 1.
	ErrMalformedSourceNode = errors.New("rbtree: malformed source node")
	// ErrPreconditionViolated signals a helper called on a node which does not
	// have the required shape.
	ErrPreconditionViolated = errors.New("rbtree: precondition violated")
	// ErrInvalidTree signals a violated red-black invariant.
	ErrInvalidTree = errors.New("rbtree: invalid tree")
)
