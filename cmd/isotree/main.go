// Command isotree reads keys from a text file into a 2-3-4 tree, converts it
// to an isometric red-black tree and renders the result.
//
// Usage:
//
//	isotree [--numeric] [--format console|dot|html] [--show rb|234|both] FILE
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
