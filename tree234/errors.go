package tree234

import "errors"

var (
	// ErrInvalidTree signals a violated structural tree invariant.
	ErrInvalidTree = errors.New("tree234: invalid tree")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("tree234: invalid configuration")
)
