/*
Package rbtree holds red-black trees which are isometric to 2-3-4 trees.

The package does not implement a general purpose red-black tree. It builds a
red-black tree from a given 2-3-4 tree in a single pass (see Build and
FromTree) and offers two helpers for code which maintains red-black
invariants: IsRed and FlipColors.

Every node of the 2-3-4 tree is expanded into a cluster of binary nodes:

	[a]        ==>   a(B)

	[a|b]      ==>   a(B)
	                    \
	                    b(R)

	[a|b|c]    ==>      b(B)
	                   /    \
	                a(R)    c(R)

The converted children of the 2-3-4 node are attached to the free slots of the
cluster, from left to right. A node missing from a child slot is considered
to be black.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
