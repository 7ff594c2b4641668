/*
Package loader reads keys from text files into 2-3-4 trees.

Input holds one key per line. Leading and trailing white space is dropped,
empty lines and lines starting with '#' are skipped. Loading happens in the
background; clients may subscribe to progress messages before starting a job.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package loader

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
