/*
Package tree234 implements a small 2-3-4 tree.

Nodes of a 2-3-4 tree hold one to three ordered items. Internal nodes hold one
child more than they have items, and all leaves are at the same depth. The tree
grows at the root: insertion splits every full node on its way down, so an
insert never has to back up.

The package serves as the source for conversions to red-black trees (see
package rbtree). It therefore exposes read access to single nodes: item count,
indexed items, child count and indexed children. Deletion is not implemented.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree234

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
