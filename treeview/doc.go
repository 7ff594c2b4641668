/*
Package treeview renders 2-3-4 trees and red-black trees for debugging.

Three output formats are supported: Graphviz DOT, colored text for fixed-width
consoles and nested HTML lists.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treeview

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// label returns the display text for an item.
func label(item any) string {
	if s, ok := item.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", item)
}
